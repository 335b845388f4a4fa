package domain

import "errors"

// Taxonomía de errores del pipeline. Cada fallo de las etapas de carga y
// cálculo se clasifica en exactamente una categoría y se captura una sola
// vez en el boundary superior (internal/job).
var (
	// ErrNotFound indica que el archivo de config o de entrada no existe.
	ErrNotFound = errors.New("not found")

	// ErrFormat indica que el documento no se pudo parsear.
	ErrFormat = errors.New("invalid format")

	// ErrValidation indica que el documento parseó bien pero está
	// incompleto o es semánticamente inválido.
	ErrValidation = errors.New("validation failed")
)

// Error es un error clasificado con mensaje legible. El mensaje va tal
// cual al campo error_message del reporte, así que no lleva prefijos
// internos de paquete.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap permite clasificar con errors.Is contra los sentinels.
func (e *Error) Unwrap() error { return e.kind }

// NotFound crea un error de archivo inexistente.
func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

// Format crea un error de documento no parseable.
func Format(msg string) error { return &Error{kind: ErrFormat, msg: msg} }

// Validation crea un error de validación semántica.
func Validation(msg string) error { return &Error{kind: ErrValidation, msg: msg} }
