package constants

import "net/http"

// CodedError carries the HTTP status the API error handler should answer
// with. Services and stores return these; nothing below the API layer
// touches net/http response writing.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound          = NewCodedError(http.StatusNotFound, "registro no encontrado")
	ErrFormularioNotFound  = NewCodedError(http.StatusNotFound, "formulario no encontrado")
	ErrBadRequest          = NewCodedError(http.StatusBadRequest, "solicitud inválida")
	ErrUnauthorized        = NewCodedError(http.StatusUnauthorized, "no autorizado")
	ErrMissingAuthCookie   = NewCodedError(http.StatusUnauthorized, "falta la cookie de autenticación")
	ErrDemasiadasPoliticas = NewCodedError(http.StatusBadRequest, "máximo 2 políticas por formulario")
)
