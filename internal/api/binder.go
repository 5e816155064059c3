package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
)

// Binder decodifica los cuerpos JSON con sonic; el binder por defecto de
// echo queda para todo lo que no sea JSON.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	if req.ContentLength == 0 {
		return b.fallback.Bind(i, c)
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if ctype != echo.MIMEApplicationJSON && ctype != echo.MIMEApplicationJSONCharsetUTF8 {
		return b.fallback.Bind(i, c)
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := sonic.Unmarshal(body, i); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err)
	}
	return nil
}

// Validator aplica las etiquetas validate de los DTO.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
