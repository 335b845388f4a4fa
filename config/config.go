package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/signaljob/internal/domain"
)

// requiredKeys son las keys obligatorias del documento de configuración.
var requiredKeys = []string{"seed", "window", "version"}

// Config es la configuración validada del job.
//
// El documento se decodifica primero a un mapa sin tipar y después se
// coerciona campo a campo: así las keys desconocidas se aceptan (y se
// ignoran aguas abajo) y cualquier valor con tipo incorrecto produce un
// error de validación en vez de un fallo silencioso.
type Config struct {
	Seed    int
	Window  int
	Version string

	// Extra conserva las keys no reconocidas del documento.
	Extra map[string]any
}

// Load carga y valida la configuración desde el archivo YAML.
//
// Clasificación de fallos: archivo inexistente → ErrNotFound, YAML no
// parseable → ErrFormat, keys ausentes o con tipo incorrecto →
// ErrValidation. No valida que window sea positivo — ese contrato
// pertenece al cálculo de señal.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, domain.NotFound("configuration file not found")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, domain.Format("invalid configuration file format")
	}

	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, domain.Validation("invalid configuration file structure")
		}
	}

	cfg := &Config{Extra: map[string]any{}}

	if cfg.Seed, err = intKey(raw, "seed"); err != nil {
		return nil, err
	}
	if cfg.Window, err = intKey(raw, "window"); err != nil {
		return nil, err
	}

	version, ok := raw["version"].(string)
	if !ok {
		return nil, domain.Validation("configuration key version must be a string")
	}
	cfg.Version = version

	for key, value := range raw {
		switch key {
		case "seed", "window", "version":
		default:
			cfg.Extra[key] = value
		}
	}

	return cfg, nil
}

// intKey coerciona la key dada a int. yaml.v3 decodifica enteros como int
// o int64 según el tamaño; cualquier otro tipo es un error de validación.
func intKey(raw map[string]any, key string) (int, error) {
	switch v := raw[key].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, domain.Validation(fmt.Sprintf("configuration key %s must be an integer", key))
	}
}
