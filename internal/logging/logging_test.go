package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - [A-Z]+ - .+`)

func TestWriterLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "info")

	log.Info("job started", "run_id", "ab12cd34")

	line := buf.String()
	assert.Regexp(t, lineRe, line)
	assert.Contains(t, line, " - INFO - job started run_id=ab12cd34")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestWriterLogger_LevelNames(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "debug")

	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")

	out := buf.String()
	assert.Contains(t, out, " - DEBUG - a")
	assert.Contains(t, out, " - INFO - b")
	assert.Contains(t, out, " - WARNING - c")
	assert.Contains(t, out, " - ERROR - d")
}

func TestWriterLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "info")

	log.Debug("invisible")
	log.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
}

func TestWriterLogger_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, "info").With("run_id", "ab12cd34")

	log.Info("config loaded", "window", 3)

	// Los attrs del logger van antes que los del record
	assert.Contains(t, buf.String(), "config loaded run_id=ab12cd34 window=3")
}

func TestFileLogger_AppendsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")

	first, err := NewFileLogger(path, "info")
	require.NoError(t, err)
	first.Info("primera ejecución")
	require.NoError(t, first.Close())

	second, err := NewFileLogger(path, "info")
	require.NoError(t, err)
	second.Info("segunda ejecución")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "primera ejecución")
	assert.Contains(t, string(data), "segunda ejecución")
}
