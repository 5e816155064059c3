package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

func TestAuthTokenRoundTrip(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "clave-de-prueba")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	token, err := GenerateAuthToken(&AuthTokenWrapper{Rol: constants.RolEvaluador})
	if err != nil {
		t.Fatalf("GenerateAuthToken: %v", err)
	}

	wrapper, err := ParseAuthToken(token)
	if err != nil {
		t.Fatalf("ParseAuthToken: %v", err)
	}
	if wrapper.Rol != constants.RolEvaluador {
		t.Errorf("Rol = %q, want %q", wrapper.Rol, constants.RolEvaluador)
	}
	if wrapper.ExpiresAt <= time.Now().Unix() {
		t.Errorf("ExpiresAt = %d, token ya vencido", wrapper.ExpiresAt)
	}
}

func TestParseAuthTokenInvalido(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "clave-de-prueba")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	if _, err := ParseAuthToken("no-es-un-jwt"); !errors.Is(err, constants.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestParseAuthTokenFirmaAjena(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "clave-de-prueba")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	ajeno := jwt.NewWithClaims(jwt.SigningMethodHS256, &AuthTokenWrapper{Rol: constants.RolEvaluador})
	firmado, err := ajeno.SignedString([]byte("otra-clave"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseAuthToken(firmado); !errors.Is(err, constants.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
