package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

func (c *Controller) CrearProyecto(ctx echo.Context) error {
	req := new(dto.CrearMinimoRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	form, err := c.proyecto.CrearMinimo(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, form)
}

func (c *Controller) ListarProyectos(ctx echo.Context) error {
	opts := store.ListProyectosOpts{}
	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil {
		opts.Page = page
	}
	if pageSize, err := strconv.Atoi(ctx.QueryParam("page_size")); err == nil {
		opts.PageSize = pageSize
	}
	if nombre := ctx.QueryParam("nombre"); nombre != "" {
		opts.Nombre = &nombre
	}
	if cod, err := strconv.ParseInt(ctx.QueryParam("cod_id_mga"), 10, 64); err == nil {
		opts.CodIDMGA = &cod
	}
	if dep, err := strconv.ParseInt(ctx.QueryParam("id_dependencia"), 10, 64); err == nil {
		opts.IDDependencia = &dep
	}

	lista, err := c.proyecto.Listar(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lista)
}

func (c *Controller) GetProyecto(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	form, err := c.proyecto.Obtener(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, form)
}

func (c *Controller) GuardarBasicos(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.BasicosRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	form, err := c.proyecto.ActualizarBasicos(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, form)
}

func (c *Controller) GuardarMetas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.MetasRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.proyecto.GuardarMetas(ctx.Request().Context(), id, req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) GuardarEstructuraFinanciera(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.EstructuraFinancieraRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	filas, err := c.proyecto.GuardarEstructuraFinanciera(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, filas)
}

func (c *Controller) GuardarPoliticas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	req := new(dto.PoliticasRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.proyecto.GuardarPoliticas(ctx.Request().Context(), id, req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// tablaRespuestas mapea el segmento de la ruta a la tabla de respuestas.
func tablaRespuestas(ctx echo.Context) (store.RespuestaTabla, error) {
	switch ctx.Param("tabla") {
	case "sectorial":
		return store.RespuestasSectorial, nil
	case "tecnico":
		return store.RespuestasTecnico, nil
	case "viabilidad":
		return store.RespuestasViabilidad, nil
	default:
		return "", constants.ErrBadRequest
	}
}

func (c *Controller) GuardarRespuestas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	tabla, err := tablaRespuestas(ctx)
	if err != nil {
		return err
	}

	req := new(dto.RespuestasRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.proyecto.GuardarRespuestas(ctx.Request().Context(), id, tabla, req); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) GetRespuestas(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	tabla, err := tablaRespuestas(ctx)
	if err != nil {
		return err
	}

	respuestas, err := c.proyecto.ListarRespuestas(ctx.Request().Context(), id, tabla)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, respuestas)
}

func (c *Controller) GetConciliacion(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	conciliacion, err := c.proyecto.Conciliacion(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, conciliacion)
}
