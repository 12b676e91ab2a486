package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el nombre de usuario ya existe")
	ErrValidation    = errors.New("entrada inválida")
	ErrEmptyOrder    = errors.New("la orden debe tener al menos un servicio")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrBadSnapshot   = errors.New("snapshot inválido")
	ErrSyncFailed    = errors.New("sincronización fallida")
)
