package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/constituency/internal/domain/dto"
)

func (c *Controller) FileComplaint(ctx echo.Context) error {
	var req dto.FileComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	res, err := c.service.FileComplaint(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}

	if res.ChooseSeat {
		return ctx.JSON(http.StatusOK, res)
	}
	return ctx.JSON(http.StatusCreated, res)
}

func (c *Controller) GetComplaintStatus(ctx echo.Context) error {
	complaint, err := c.service.ComplaintStatus(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, complaint)
}

func (c *Controller) GetStats(ctx echo.Context) error {
	stats, err := c.service.Stats(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
