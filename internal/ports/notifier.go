package ports

import "context"

// Notifier presenta al usuario una vista previa del resultado.
type Notifier interface {
	// Preview muestra las primeras filas de la vista (close, rolling_mean).
	// En la implementación de consola, imprime una tabla formateada.
	// Es puramente observacional: no forma parte del contrato persistido.
	Preview(ctx context.Context, closes []float64, rollingMean []*float64) error
}
