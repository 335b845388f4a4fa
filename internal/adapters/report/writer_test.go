package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alejandrodnm/signaljob/internal/adapters/report"
	"github.com/alejandrodnm/signaljob/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write_SuccessReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	rep := domain.NewReport("1.0.0", 250, 0.41235, 12, 42)

	data, err := report.NewWriter().Write(path, rep)
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(onDisk, &decoded))
	assert.Equal(t, "1.0.0", decoded["version"])
	assert.Equal(t, float64(250), decoded["rows_processed"])
	assert.Equal(t, "signal_rate", decoded["metric"])
	assert.Equal(t, 0.4124, decoded["value"]) // redondeado a 4 decimales
	assert.Equal(t, "success", decoded["status"])
}

func TestWriter_Write_StableKeyOrderAndIndent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	rep := domain.NewReport("v1", 10, 0.5, 3, 7)

	data, err := report.NewWriter().Write(path, rep)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.Contains(out, "\n    \"rows_processed\""), "indentación de 4 espacios")

	// El orden de las keys sigue el orden de declaración del struct
	order := []string{"version", "rows_processed", "metric", "value", "latency_ms", "seed", "status"}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, "\""+key+"\"")
		require.GreaterOrEqual(t, idx, 0, key)
		assert.Greater(t, idx, last, key)
		last = idx
	}
}

func TestWriter_Write_ErrorReportKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	rep := domain.NewErrorReport(domain.VersionUnknown, domain.NotFound("input CSV file not found"))

	data, err := report.NewWriter().Write(path, rep)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "\"version\": \"unknown\"")
	assert.Contains(t, out, "\"status\": \"error\"")
	assert.Contains(t, out, "\"error_message\": \"input CSV file not found\"")
	assert.Less(t, strings.Index(out, "\"version\""), strings.Index(out, "\"status\""))
	assert.Less(t, strings.Index(out, "\"status\""), strings.Index(out, "\"error_message\""))
}

func TestWriter_Write_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("previous run"), 0o644))

	_, err := report.NewWriter().Write(path, domain.NewReport("v1", 1, 0, 1, 1))
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(onDisk), "previous run")
}
