package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/constituency/internal/domain"
	"github.com/ougirez/constituency/internal/pkg/constants"
	"github.com/ougirez/constituency/internal/pkg/logger"
)

type codedError interface {
	Code() int
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := domain.ErrorResponse{
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		resp.Code = he.Code
		if msg, ok := he.Message.(string); ok {
			resp.Message = msg
		} else {
			resp.Message = http.StatusText(he.Code)
		}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(codedError); ok {
			resp.Code = ce.Code()
			break
		}
	}

	var verr *constants.ValidationError
	if errors.As(err, &verr) {
		resp.Message = verr.Message
		resp.Field = verr.Field
	}

	if resp.Code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Request().URL.Path, err.Error())
		resp.Message = http.StatusText(resp.Code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(resp.Code)
		return
	}
	_ = c.JSON(resp.Code, resp)
}
