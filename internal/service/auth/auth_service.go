// Package auth emite el token de rol. No hay cuentas de usuario: el rol se
// elige al entrar y viaja firmado en una cookie.
package auth

import (
	"context"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/utils"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) EmitirToken(ctx context.Context, rol string) (string, error) {
	switch rol {
	case constants.RolDependencia, constants.RolRadicador, constants.RolEvaluador:
	default:
		return "", constants.ErrBadRequest
	}

	token, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{Rol: rol})
	if err != nil {
		return "", err
	}

	logger.Debugf(ctx, "token emitido para rol [%s]", rol)
	return token, nil
}
