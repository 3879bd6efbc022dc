package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Error envuelve un error centinela con un mensaje de negocio específico.
// El handler global usa Unwrap para decidir el status HTTP y devuelve
// el mensaje textual al cliente.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

// BadRequest error 400 con mensaje de negocio.
func BadRequest(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }

// NotFound error 404 con mensaje específico ("Proyecto no encontrado", etc.).
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict error 409 con mensaje específico.
func Conflict(msg string) error { return &Error{Kind: ErrDuplicate, Message: msg} }

// Unauthorized error 401 con mensaje específico.
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

// Forbidden error 403 con mensaje específico.
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }
