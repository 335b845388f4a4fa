package job

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/signaljob/config"
	"github.com/alejandrodnm/signaljob/internal/dataset"
	"github.com/alejandrodnm/signaljob/internal/domain"
	"github.com/alejandrodnm/signaljob/internal/ports"
	"github.com/alejandrodnm/signaljob/internal/signal"
)

// Options son los paths de una ejecución del job.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string
}

// Runner ejecuta el pipeline secuencial completo: config → dataset →
// señal → reporte. Ningún componente corre en paralelo con otro. Todos
// los fallos de las tres primeras etapas se capturan exactamente una vez
// aquí y se redirigen al camino del reporte de error.
type Runner struct {
	log      *slog.Logger
	notifier ports.Notifier
	writer   ports.ReportWriter
	stdout   io.Writer
	clock    func() time.Time
}

// New crea un Runner con todas las dependencias inyectadas.
func New(log *slog.Logger, notifier ports.Notifier, writer ports.ReportWriter) *Runner {
	return &Runner{
		log:      log,
		notifier: notifier,
		writer:   writer,
		stdout:   os.Stdout,
		clock:    time.Now,
	}
}

// WithStdout redirige la salida estándar del job (tests).
func (r *Runner) WithStdout(w io.Writer) *Runner {
	r.stdout = w
	return r
}

// WithClock fija el reloj para latencias deterministas (tests).
func (r *Runner) WithClock(clock func() time.Time) *Runner {
	r.clock = clock
	return r
}

// Run ejecuta el pipeline completo y devuelve el código de salida del
// proceso: 0 en éxito, 1 en cualquier fallo capturado. La latencia se
// mide desde el comienzo real de la ejecución en ambos caminos — el de
// error no resetea el reloj.
func (r *Runner) Run(ctx context.Context, opts Options) int {
	start := r.clock()
	r.log.Info("job started", "run_id", uuid.NewString()[:8])

	st, err := r.execute(ctx, opts)
	latency := r.clock().Sub(start).Milliseconds()

	if err != nil {
		version := domain.VersionUnknown
		if st.cfg != nil {
			version = st.cfg.Version
		}
		rep := domain.NewErrorReport(version, err)

		r.log.Error("error occurred", "err", err.Error())
		if data, werr := r.writer.Write(opts.OutputPath, rep); werr != nil {
			r.log.Error("write error report failed", "err", werr)
		} else {
			fmt.Fprintln(r.stdout, string(data))
		}
		r.log.Info("job failed", "latency_ms", latency)
		return 1
	}

	rep := domain.NewReport(st.cfg.Version, st.data.RowCount(), st.result.SignalRate, latency, st.cfg.Seed)
	data, werr := r.writer.Write(opts.OutputPath, rep)
	if werr != nil {
		// El reporte es el único artefacto persistido del job: sin él no
		// hay camino de éxito posible.
		r.log.Error("write report failed", "err", werr)
		return 1
	}
	fmt.Fprintln(r.stdout, string(data))

	r.log.Info("metrics computed",
		"signal_rate", fmt.Sprintf("%.4f", st.result.SignalRate),
		"rows_processed", st.data.RowCount(),
	)
	r.log.Info("job completed successfully", "latency_ms", latency)
	return 0
}

// pipelineState acumula el estado parcial disponible en cada etapa, para
// que el boundary pueda resolver el campo version del reporte de error
// aunque la config no llegara a cargarse.
type pipelineState struct {
	cfg    *config.Config
	data   *domain.Dataset
	result *signal.Result
}

// execute corre las etapas de carga y cálculo más la vista previa.
func (r *Runner) execute(ctx context.Context, opts Options) (pipelineState, error) {
	var st pipelineState

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return st, err
	}
	st.cfg = cfg
	r.log.Info("config loaded", "seed", cfg.Seed, "window", cfg.Window, "version", cfg.Version)

	data, err := dataset.Load(opts.InputPath)
	if err != nil {
		return st, err
	}
	st.data = data
	r.log.Info("data loaded", "rows", data.RowCount())

	result, err := signal.Compute(data.Closes, cfg.Window)
	if err != nil {
		return st, err
	}
	st.result = result
	r.log.Info("rolling mean calculated", "window", cfg.Window)
	r.log.Info("signals generated")

	if err := r.notifier.Preview(ctx, data.Closes, result.RollingMean); err != nil {
		r.log.Warn("preview failed", "err", err)
	}

	return st, nil
}
