package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
)

func (c *Controller) CrearObservacion(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.ObservacionRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	obs, err := c.proyecto.CrearObservacion(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, obs)
}

func (c *Controller) GetObservaciones(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	observaciones, err := c.proyecto.ListarObservaciones(ctx.Request().Context(), id, ctx.QueryParam("tipo_documento"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, observaciones)
}
