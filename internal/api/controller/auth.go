package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dplaneacion/formularios-mga/internal/domain/dto"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

// ElegirRol emite el token del rol elegido y lo deja en la cookie de sesión.
func (c *Controller) ElegirRol(ctx echo.Context) error {
	req := new(dto.RolRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	token, err := c.auth.EmitirToken(ctx.Request().Context(), req.Rol)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(12 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, map[string]string{"rol": req.Rol})
}
