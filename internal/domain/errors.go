package domain

import "errors"

var (
	// ErrEmptyCollection: operación de agregado o first/last sobre cero mensajes.
	ErrEmptyCollection = errors.New("collection is empty")
	// ErrNoMatch: búsqueda estricta sin ningún elemento que cumpla el predicado.
	ErrNoMatch = errors.New("no message matches the predicate")
	// ErrIndexOutOfRange: acceso a la última letra de un texto vacío.
	ErrIndexOutOfRange = errors.New("index out of range")
)
