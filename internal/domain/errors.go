package domain

import "errors"

// Errores de dominio (sin dependencias externas). La sesión degrada a
// "sin selección" en vez de propagar pánicos; estos sentinelas existen para
// que los fallos silenciosos sean observables en tests y logs.
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrCompanyNotFound      = errors.New("empresa no encontrada")
	ErrCompanyNotAccessible = errors.New("el usuario no tiene acceso a la empresa")
	ErrNoSession            = errors.New("no hay sesión activa")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
)
