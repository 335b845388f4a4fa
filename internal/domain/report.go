package domain

import "math"

const (
	// MetricSignalRate es la única métrica que emite el job.
	MetricSignalRate = "signal_rate"

	// VersionUnknown es el sentinel del campo version cuando la config
	// nunca llegó a cargarse antes del fallo.
	VersionUnknown = "unknown"

	// StatusSuccess y StatusError son los dos estados terminales del job.
	StatusSuccess = "success"
	StatusError   = "error"
)

// Report es el reporte de éxito. El orden de los campos define el orden
// de las keys en el JSON emitido — no reordenar.
type Report struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMs     int64   `json:"latency_ms"`
	Seed          int     `json:"seed"`
	Status        string  `json:"status"`
}

// ErrorReport es el reporte de fallo. Mismo contrato de orden de keys.
type ErrorReport struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// NewReport construye el reporte de éxito con value redondeado a 4
// decimales, como exige el contrato del campo.
func NewReport(version string, rows int, signalRate float64, latencyMs int64, seed int) Report {
	return Report{
		Version:       version,
		RowsProcessed: rows,
		Metric:        MetricSignalRate,
		Value:         Round4(signalRate),
		LatencyMs:     latencyMs,
		Seed:          seed,
		Status:        StatusSuccess,
	}
}

// NewErrorReport construye el reporte de fallo a partir del error
// capturado y de la versión disponible (VersionUnknown si la config no
// llegó a cargarse).
func NewErrorReport(version string, err error) ErrorReport {
	return ErrorReport{
		Version:      version,
		Status:       StatusError,
		ErrorMessage: err.Error(),
	}
}

// Round4 redondea a 4 decimales.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
