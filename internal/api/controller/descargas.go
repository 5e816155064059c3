package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (c *Controller) DescargarExcelConcepto(ctx echo.Context) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}

	buf, nombre, err := c.descarga.ExcelConceptoTecnicoSectorial(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return ctx.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}
