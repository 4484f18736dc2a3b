// Package config loads the advent configuration from an optional YAML or JSON
// file overlaid with ADVENT_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/advent/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is given.
const DefaultFile = "advent.yaml"

// Input sources.
const (
	SourceEmbedded = "embedded"
	SourceDir      = "dir"
	SourceRedis    = "redis"
)

// Config is the resolved configuration of the advent binary.
type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Inputs   InputsConfig `mapstructure:"inputs"`
	Server   ServerConfig `mapstructure:"server"`
}

// InputsConfig selects where puzzle inputs come from.
type InputsConfig struct {
	Source           string `mapstructure:"source"`
	Dir              string `mapstructure:"dir"`
	RedisURL         string `mapstructure:"redis_url"`
	RedisPrefix      string `mapstructure:"redis_prefix"`
	FallbackEmbedded bool   `mapstructure:"fallback_embedded"`
}

// ServerConfig configures `advent serve`.
type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	Metrics bool   `mapstructure:"metrics"`
}

// envKeys maps environment variables to config paths.
var envKeys = map[string][]string{
	"ADVENT_LOG_LEVEL":                {"log_level"},
	"ADVENT_INPUTS_SOURCE":            {"inputs", "source"},
	"ADVENT_INPUTS_DIR":               {"inputs", "dir"},
	"ADVENT_INPUTS_REDIS_URL":         {"inputs", "redis_url"},
	"ADVENT_INPUTS_REDIS_PREFIX":      {"inputs", "redis_prefix"},
	"ADVENT_INPUTS_FALLBACK_EMBEDDED": {"inputs", "fallback_embedded"},
	"ADVENT_SERVER_ADDR":              {"server", "addr"},
	"ADVENT_SERVER_METRICS":           {"server", "metrics"},
}

func defaults() map[string]any {
	return map[string]any{
		"log_level": "warn",
		"inputs": map[string]any{
			"source":            SourceDir,
			"dir":               "inputs",
			"redis_prefix":      "advent:input:",
			"fallback_embedded": true,
		},
		"server": map[string]any{
			"addr":    ":8080",
			"metrics": true,
		},
	}
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	cfg, err := decode(defaults())
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads path, applies the environment and validates the result.
// An empty path reads DefaultFile if it exists; an explicit path must exist.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	raw := defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	file, err := readFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			file = nil
		} else {
			return Config{}, err
		}
	}
	merge(raw, file)

	for env, keyPath := range envKeys {
		if v, ok := lookup(env); ok {
			set(raw, keyPath, v)
		}
	}

	cfg, err := decode(raw)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	out := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return out, nil
}

func decode(raw map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed by a default.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Inputs.Source {
	case SourceEmbedded, SourceDir:
	case SourceRedis:
		if c.Inputs.RedisURL == "" {
			return fmt.Errorf("inputs.redis_url is required when inputs.source is %q", SourceRedis)
		}
	default:
		return fmt.Errorf("unknown inputs.source %q (want %s, %s or %s)", c.Inputs.Source, SourceEmbedded, SourceDir, SourceRedis)
	}
	return nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}

func set(m map[string]any, path []string, v any) {
	for _, k := range path[:len(path)-1] {
		sub, ok := m[k].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[k] = sub
		}
		m = sub
	}
	m[path[len(path)-1]] = v
}
