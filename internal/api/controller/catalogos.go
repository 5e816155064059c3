package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetLineas(ctx echo.Context) error {
	opciones, err := c.catalogo.Lineas(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetSectores(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	opciones, err := c.catalogo.Sectores(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetProgramas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	opciones, err := c.catalogo.Programas(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetMetas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	opciones, err := c.catalogo.Metas(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetDependencias(ctx echo.Context) error {
	opciones, err := c.catalogo.Dependencias(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetPoliticas(ctx echo.Context) error {
	opciones, err := c.catalogo.Politicas(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetCategorias(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	opciones, err := c.catalogo.Categorias(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetSubcategorias(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	opciones, err := c.catalogo.Subcategorias(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, opciones)
}

func (c *Controller) GetVariablesSectorial(ctx echo.Context) error {
	variables, err := c.catalogo.VariablesSectorial(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, variables)
}

func (c *Controller) GetVariablesTecnico(ctx echo.Context) error {
	variables, err := c.catalogo.VariablesTecnico(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, variables)
}

func (c *Controller) GetViabilidades(ctx echo.Context) error {
	viabilidades, err := c.catalogo.Viabilidades(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, viabilidades)
}
