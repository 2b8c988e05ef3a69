package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrQueryFailed  = errors.New("error al ejecutar la consulta")
	ErrDanglingRef  = errors.New("referencia a un registro inexistente")
)
