// internal/common/config/loader.go
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	apperrors "dq-calculator/internal/common/errors"
)

// DefaultConfigFile is used when neither the caller nor the environment
// names a configuration document.
const DefaultConfigFile = "configs/default_config.yaml"

// EnvConfigFile overrides the configuration file path.
const EnvConfigFile = "DQ_CONFIG_FILE"

// Loader owns the canonical configuration instance. Load parses, defaults
// and validates the document; Reload re-runs the full pipeline and swaps the
// cached snapshot atomically, so concurrent readers see either the old or
// the new instance in full.
type Loader struct {
	path    string
	current atomic.Pointer[Config]
}

// NewLoader creates a loader for the given path. An empty path falls back to
// the DQ_CONFIG_FILE environment variable (after .env bootstrap), then to
// DefaultConfigFile.
func NewLoader(path string) *Loader {
	if path == "" {
		loadEnvFile()
		path = EnvString("config_file")
	}
	if path == "" {
		path = DefaultConfigFile
	}
	return &Loader{path: path}
}

// Path returns the configuration file the loader reads from.
func (l *Loader) Path() string { return l.path }

// Load returns the cached configuration, running the load pipeline on first
// use.
func (l *Loader) Load() (*Config, error) {
	if cfg := l.current.Load(); cfg != nil {
		return cfg, nil
	}
	return l.Reload()
}

// Reload bypasses the cache, re-runs the full pipeline and replaces any
// previously cached instance. Consumers must re-fetch via the loader rather
// than hold a stale reference across a reload.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current.Store(cfg)
	return cfg, nil
}

// Get returns the current snapshot without touching the file system.
func (l *Loader) Get() (*Config, error) {
	if cfg := l.current.Load(); cfg != nil {
		return cfg, nil
	}
	return nil, apperrors.NewConfigNotLoadedError()
}

func (l *Loader) load() (*Config, error) {
	if _, err := os.Stat(l.path); err != nil {
		return nil, apperrors.NewConfigFileNotFoundError(l.path)
	}

	raw, err := parseDocument(l.path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		raw = map[string]any{}
	}
	applyRawDefaults(raw)

	// Shape check on the raw document, then struct mapping. Both feed the
	// same violation list so the author gets everything in one pass.
	problems := checkDocument(raw)

	var cfg Config
	if err := decodeDocument(raw, &cfg); err != nil {
		return nil, apperrors.NewConfigParseFailedError(l.path, err)
	}

	applyDefaults(&cfg)
	problems = append(problems, validateConfig(&cfg)...)
	if len(problems) > 0 {
		return nil, apperrors.NewConfigurationError(problems)
	}

	return &cfg, nil
}

// parseDocument reads the raw document into an untyped map. The rule tables
// are keyed by display labels, so key case must survive parsing exactly.
func parseDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigParseFailedError(path, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, apperrors.NewConfigParseFailedError(path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, apperrors.NewConfigParseFailedError(path, err)
		}
	default:
		return nil, apperrors.NewConfigUnsupportedFormatError(filepath.Ext(path))
	}
	return raw, nil
}

func decodeDocument(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "mapstructure",
		Result:  cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// EnvString reads a DQ_-prefixed environment setting, populated by the .env
// bootstrap or the process environment.
func EnvString(key string) string {
	v := viper.New()
	v.SetEnvPrefix("DQ")
	v.AutomaticEnv()
	return v.GetString(key)
}

// EnvFloat is the numeric variant of EnvString. Unset or non-numeric values
// read as 0.
func EnvFloat(key string) float64 {
	v := viper.New()
	v.SetEnvPrefix("DQ")
	v.AutomaticEnv()
	return v.GetFloat64(key)
}

// loadEnvFile loads a .env from the working directory or the project root,
// for running the CLI from different directories.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}
	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
