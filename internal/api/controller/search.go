package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/constituency/internal/domain/dto"
)

func (c *Controller) Search(ctx echo.Context) error {
	var req dto.SearchRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) GetSeatOptions(ctx echo.Context) error {
	options, err := c.service.Options(ctx.Request().Context(), ctx.Param("pincode"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, options)
}
