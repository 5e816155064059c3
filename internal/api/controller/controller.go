// Package controller traduce HTTP a llamadas de servicio: parsea parámetros,
// vincula cuerpos y serializa respuestas. Ninguna regla de negocio vive acá.
package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/service/auth"
	"github.com/dplaneacion/formularios-mga/internal/service/catalogo"
	"github.com/dplaneacion/formularios-mga/internal/service/descarga"
	"github.com/dplaneacion/formularios-mga/internal/service/proyecto"
)

type Controller struct {
	proyecto *proyecto.Service
	catalogo *catalogo.Service
	descarga *descarga.Service
	auth     *auth.Service
}

func NewController(proyectoSvc *proyecto.Service, catalogoSvc *catalogo.Service, descargaSvc *descarga.Service, authSvc *auth.Service) *Controller {
	return &Controller{
		proyecto: proyectoSvc,
		catalogo: catalogoSvc,
		descarga: descargaSvc,
		auth:     authSvc,
	}
}

func paramID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, constants.ErrBadRequest
	}
	return id, nil
}
