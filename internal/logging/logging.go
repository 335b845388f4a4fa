package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// timeLayout replica el timestamp clásico de log de job, con los
// milisegundos separados por coma.
const timeLayout = "2006-01-02 15:04:05,000"

// FileLogger agrupa el logger y el handle del archivo para poder
// cerrarlo limpiamente al terminar la ejecución. Una sola stream por
// run: se abre al arrancar en modo append y no se reabre.
type FileLogger struct {
	*slog.Logger
	f *os.File
}

// NewFileLogger abre (o crea) el archivo de log y devuelve un logger que
// escribe líneas `<timestamp> - <LEVEL> - <mensaje> k=v`.
func NewFileLogger(path, level string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging.NewFileLogger: open %q: %w", path, err)
	}
	return &FileLogger{
		Logger: slog.New(newLineHandler(f, parseLevel(level))),
		f:      f,
	}, nil
}

// Close cierra el archivo de log.
func (l *FileLogger) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

// NewWriterLogger crea un logger con el mismo formato sobre un io.Writer
// arbitrario (tests).
func NewWriterLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(newLineHandler(w, parseLevel(level)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// lineHandler implementa slog.Handler con el formato plano de una línea
// por evento. Los attrs se anexan al mensaje como ` key=value`.
type lineHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

func newLineHandler(w io.Writer, level slog.Level) *lineHandler {
	return &lineHandler{mu: &sync.Mutex{}, out: w, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *lineHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder
	sb.WriteString(rec.Time.Format(timeLayout))
	sb.WriteString(" - ")
	sb.WriteString(levelName(rec.Level))
	sb.WriteString(" - ")
	sb.WriteString(rec.Message)
	for _, attr := range h.attrs {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value.Any())
	}
	rec.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", attr.Key, attr.Value.Any())
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup no agrupa: el formato de línea es plano.
func (h *lineHandler) WithGroup(string) slog.Handler { return h }

// levelName usa los nombres del logging clásico (WARNING, no WARN).
func levelName(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
