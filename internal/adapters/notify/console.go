package notify

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
)

// previewRows es cuántas filas iniciales se muestran por stdout.
const previewRows = 10

// Console implementa ports.Notifier imprimiendo una tabla formateada.
type Console struct {
	out io.Writer
}

// NewConsole crea un notificador que escribe a stdout.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter crea un notificador para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// Preview imprime las primeras filas de la vista (close, rolling_mean).
// Las medias indefinidas de las primeras window-1 filas se muestran como NaN.
func (c *Console) Preview(_ context.Context, closes []float64, rollingMean []*float64) error {
	table := tablewriter.NewWriter(c.out)
	table.Header("#", "close", "rolling_mean")

	for i, px := range closes {
		if i >= previewRows {
			break
		}
		mean := "NaN"
		if rollingMean[i] != nil {
			mean = fmt.Sprintf("%.4f", *rollingMean[i])
		}
		table.Append(
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.4f", px),
			mean,
		)
	}

	table.Render()
	return nil
}
