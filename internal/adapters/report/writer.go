package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Writer implementa ports.ReportWriter serializando el reporte como JSON
// con indentación de 4 espacios. El orden de las keys es estable porque
// sigue el orden de declaración de los campos del struct.
type Writer struct{}

// NewWriter crea el writer de reportes.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializa el reporte y lo escribe en path, sobreescribiendo
// cualquier archivo previo. Devuelve el documento serializado.
func (w *Writer) Write(path string, rep any) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("report.Write: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("report.Write: write %q: %w", path, err)
	}
	return data, nil
}
