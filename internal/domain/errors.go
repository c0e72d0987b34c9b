package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrCSVNotFound el archivo de importación no existe. Es el único error fatal de una importación
	// que no proviene de la base de datos.
	ErrCSVNotFound = fmt.Errorf("archivo CSV de importación: %w", ErrNotFound)
)
