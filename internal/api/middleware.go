package api

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/utils"
)

// EvaluadorMiddleware protege los documentos de evaluación: exige la cookie
// de sesión con el rol evaluador.
func (svc *APIService) EvaluadorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Rol != constants.RolEvaluador {
			return constants.ErrUnauthorized
		}

		ctx.Set(constants.CtxKeyRol, token.Rol)

		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
