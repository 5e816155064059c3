package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

// AuthTokenWrapper son los claims que viajan en la cookie de sesión.
type AuthTokenWrapper struct {
	Rol    string `json:"rol,omitempty"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func signingKey() []byte {
	return []byte(viper.GetString(constants.ViperSecretKey))
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	if wrapper.ExpiresAt == 0 {
		wrapper.ExpiresAt = time.Now().Add(12 * time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString(signingKey())
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(raw, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrUnauthorized
		}
		return signingKey(), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
