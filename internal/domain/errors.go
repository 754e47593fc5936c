package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrPersistence  = errors.New("fallo de persistencia")
	ErrTransport    = errors.New("fallo de red")
	ErrConflict     = errors.New("conflicto con el estado actual")
)
