package api

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Serializer is an echo.JSONSerializer backed by sonic.
type Serializer struct {
	api sonic.API
}

func NewSerializer() *Serializer {
	return &Serializer{api: sonic.ConfigStd}
}

func (s *Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *Serializer) Deserialize(c echo.Context, i interface{}) error {
	if err := s.api.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid json body: %s", err.Error())).SetInternal(err)
	}
	return nil
}
