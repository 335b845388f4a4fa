package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/alejandrodnm/signaljob/internal/domain"
)

// closeColumn es la única columna obligatoria del CSV de entrada.
const closeColumn = "close"

// Load parsea y valida el CSV de entrada.
//
// Contrato:
//   - archivo inexistente → ErrNotFound
//   - CSV no parseable (quoting roto, filas desalineadas) o de cero
//     bytes → ErrFormat
//   - header sin filas de datos → ErrValidation
//   - sin columna close, o close no numérico → ErrValidation
//
// La primera línea es el header; el resto son filas de datos alineadas
// posicionalmente con él. El orden de las filas se preserva porque el
// cálculo rolling depende de él.
func Load(path string) (*domain.Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, domain.NotFound("input CSV file not found")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset.Load: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, domain.Format("invalid CSV file format")
	}
	if len(records) == 0 {
		// Archivo de cero bytes: ni siquiera hay header.
		return nil, domain.Format("invalid CSV file format")
	}

	columns := records[0]
	data := records[1:]
	if len(data) == 0 {
		return nil, domain.Validation("input file is empty")
	}

	closeIdx := indexOf(columns, closeColumn)
	if closeIdx < 0 {
		return nil, domain.Validation("missing required column: close")
	}

	rows := make([]domain.Row, len(data))
	closes := make([]float64, len(data))
	for i, record := range data {
		row := make(domain.Row, len(columns))
		for j, col := range columns {
			row[col] = record[j]
		}
		rows[i] = row

		v, err := strconv.ParseFloat(record[closeIdx], 64)
		if err != nil {
			return nil, domain.Validation(fmt.Sprintf("non-numeric value in column close at row %d", i+1))
		}
		closes[i] = v
	}

	return &domain.Dataset{Columns: columns, Rows: rows, Closes: closes}, nil
}

func indexOf(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
