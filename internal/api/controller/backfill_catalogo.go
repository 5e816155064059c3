package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

func (c *Controller) BackfillCatalogoMGA(ctx echo.Context) error {
	url := ctx.QueryParam("url")
	if url == "" {
		url = viper.GetString(constants.ViperKeyCatalogoURL)
	}
	if url == "" {
		return constants.ErrBadRequest
	}

	resumen, err := c.catalogo.BackfillCatalogoMGA(ctx.Request().Context(), url)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resumen)
}
