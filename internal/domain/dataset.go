package domain

// Row es una fila del CSV de entrada: nombre de columna → valor crudo.
type Row map[string]string

// Dataset es la tabla de entrada ya validada. El orden de las filas se
// preserva porque el cálculo rolling depende de él.
type Dataset struct {
	Columns []string
	Rows    []Row

	// Closes es la columna close ya coercionada a float64, alineada
	// posicionalmente con Rows.
	Closes []float64
}

// RowCount devuelve el número de filas de datos (el header no cuenta).
func (d *Dataset) RowCount() int { return len(d.Rows) }
