package core

import "errors"

var (
	// ErrNotFound cubre tanto "no existe" como "existe pero es de otro usuario".
	// Los drivers NO deben distinguir esos dos casos.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)
