package signal

import "github.com/alejandrodnm/signaljob/internal/domain"

// Result contiene las columnas derivadas y la métrica agregada de una
// pasada de cálculo.
type Result struct {
	// RollingMean[i] es la media aritmética de los window closes que
	// terminan en i, o nil para las primeras window-1 filas (una media
	// rolling necesita la ventana completa).
	RollingMean []*float64

	// Signals[i] es 1 si close[i] > rolling_mean[i]; 0 en el resto de
	// casos, incluidas las filas con media indefinida.
	Signals []int

	// SignalRate es la fracción de filas con señal 1, siempre en [0, 1].
	SignalRate float64
}

// Compute calcula la media rolling y la señal binaria sobre los closes.
// Función pura de (closes, window), sin efectos secundarios.
//
// Una media indefinida nunca es "mayor que": esas filas producen señal 0,
// no un error. Si window supera el número de filas toda la columna queda
// indefinida y SignalRate es 0.0. Un window no positivo no llega nunca al
// bucle: se rechaza aquí como error de validación.
func Compute(closes []float64, window int) (*Result, error) {
	if window <= 0 {
		return nil, domain.Validation("window must be a positive integer")
	}

	n := len(closes)
	res := &Result{
		RollingMean: make([]*float64, n),
		Signals:     make([]int, n),
	}

	// Suma deslizante: entra closes[i], sale closes[i-window].
	sum := 0.0
	ones := 0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			mean := sum / float64(window)
			res.RollingMean[i] = &mean
			if c > mean {
				res.Signals[i] = 1
				ones++
			}
		}
	}

	if n > 0 {
		res.SignalRate = float64(ones) / float64(n)
	}
	return res, nil
}
