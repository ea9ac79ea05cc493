// Package config loads mazectl settings from defaults, an optional YAML file,
// a .env file and MAZE_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/bt4R9/TD/internal/logging"
	"github.com/bt4R9/TD/maze"
)

// Environment variable names.
const (
	EnvSize      = "MAZE_SIZE"
	EnvSeed      = "MAZE_SEED"
	EnvEntrances = "MAZE_ENTRANCES"
	EnvParallel  = "MAZE_PARALLEL"
	EnvLogLevel  = "MAZE_LOG_LEVEL"
	EnvLogFormat = "MAZE_LOG_FORMAT"
	EnvColor     = "MAZE_COLOR"
)

// DefaultEnvFile is the dotenv file read when Load is given none.
const DefaultEnvFile = ".env"

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the application's configuration values.
type Config struct {
	Size      int    `yaml:"size"`       // Side length of generated mazes
	Seed      int64  `yaml:"seed"`       // Random seed; 0 picks a time-based seed per run
	Entrances int    `yaml:"entrances"`  // Bottom-row openings per maze
	Parallel  int    `yaml:"parallel"`   // Worker count for verify
	LogLevel  string `yaml:"log_level"`  // debug, info, warn or error
	LogFormat string `yaml:"log_format"` // text or json
	Color     bool   `yaml:"color"`      // ANSI colors in rendered mazes
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:      21,
		Seed:      0,
		Entrances: 1,
		Parallel:  4,
		LogLevel:  "info",
		LogFormat: "text",
		Color:     false,
	}
}

// Load builds a Config. path names an optional YAML file ("" skips it).
// envFiles are dotenv files to read; with none, DefaultEnvFile is tried.
// Missing dotenv files are ignored and variables already present in the
// environment are never overwritten by them.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from MAZE_* variables. Empty values are ignored.
func (c *Config) applyEnv() error {
	var err error
	if c.Size, err = getEnvAsInt(EnvSize, c.Size); err != nil {
		return err
	}
	if c.Seed, err = getEnvAsInt64(EnvSeed, c.Seed); err != nil {
		return err
	}
	if c.Entrances, err = getEnvAsInt(EnvEntrances, c.Entrances); err != nil {
		return err
	}
	if c.Parallel, err = getEnvAsInt(EnvParallel, c.Parallel); err != nil {
		return err
	}
	if c.Color, err = getEnvAsBool(EnvColor, c.Color); err != nil {
		return err
	}
	c.LogLevel = getEnvWithDefault(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnvWithDefault(EnvLogFormat, c.LogFormat)
	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Size < maze.MinSize || c.Size > maze.MaxSize:
		return fmt.Errorf("%w: size %d not in [%d, %d]", ErrInvalidConfig, c.Size, maze.MinSize, maze.MaxSize)
	case c.Entrances < 1 || c.Entrances > maze.EntranceSlots(c.Size):
		return fmt.Errorf("%w: entrances %d not in [1, %d] for size %d", ErrInvalidConfig, c.Entrances, maze.EntranceSlots(c.Size), c.Size)
	case c.Parallel < 1:
		return fmt.Errorf("%w: parallel must be at least 1 (%d)", ErrInvalidConfig, c.Parallel)
	case !logging.ValidFormat(c.LogFormat):
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// def if it is unset or empty.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) (int, error) {
	v := getEnvWithDefault(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, def int64) (int64, error) {
	v := getEnvWithDefault(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	v := getEnvWithDefault(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s must be a boolean: %w", ErrInvalidConfig, key, err)
	}
	return b, nil
}
