// Package config loads gridpath settings: built-in defaults, then an
// optional YAML file named by GRIDPATH_CONFIG, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "GRIDPATH_CONFIG"
	EnvLogLevel   = "GRIDPATH_LOG_LEVEL"
	EnvHTTPAddr   = "GRIDPATH_HTTP_ADDR"
	EnvAlgorithm  = "GRIDPATH_ALGORITHM"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full gridpath configuration.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
		Brotli              bool   `yaml:"brotli"`
		MaxGridCells        int    `yaml:"max_grid_cells"`
	} `yaml:"server"`
	Search struct {
		Algorithm      string  `yaml:"algorithm"`
		Conn           int     `yaml:"conn"`
		OrthogonalCost float64 `yaml:"orthogonal_cost"`
		DiagonalCost   float64 `yaml:"diagonal_cost"`
	} `yaml:"search"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Server.Addr = ":8080"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.Server.IdleTimeoutSeconds = 60
	c.Server.Brotli = true
	c.Server.MaxGridCells = 250_000
	c.Search.Algorithm = algorithms.Dijkstra
	c.Search.Conn = 4
	c.Search.OrthogonalCost = 1
	c.Search.DiagonalCost = math.Sqrt2

	return c
}

// Load is Read followed by Validate.
func Load() (Config, error) {
	c, err := Read()
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Read builds a Config from defaults, the YAML file named by
// GRIDPATH_CONFIG (if set) and environment overrides. It does not validate,
// so callers can apply their own overrides first.
func Read() (Config, error) {
	c := Default()
	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := c.ReadFile(path); err != nil {
			return c, err
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Search.Algorithm = v
	}

	return c, nil
}

// ReadFile overlays the YAML document at path onto c.
// Keys absent from the file keep their current values.
func (c *Config) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// Validate checks that the search and server sections are usable.
func (c Config) Validate() error {
	if _, err := algorithms.Lookup(c.Search.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Search.Conn != 4 && c.Search.Conn != 8 {
		return fmt.Errorf("%w: search.conn must be 4 or 8, got %d", ErrInvalidConfig, c.Search.Conn)
	}
	if !(c.Search.OrthogonalCost > 0) || !(c.Search.DiagonalCost > 0) {
		return fmt.Errorf("%w: search costs must be positive (orthogonal=%v, diagonal=%v)",
			ErrInvalidConfig, c.Search.OrthogonalCost, c.Search.DiagonalCost)
	}
	if c.Server.MaxGridCells <= 0 {
		return fmt.Errorf("%w: server.max_grid_cells must be positive", ErrInvalidConfig)
	}

	return nil
}

// GridOptions converts the search section into grid construction options.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if c.Search.Conn == 8 {
		opts.Conn = gridgraph.Conn8
	}
	opts.OrthogonalCost = c.Search.OrthogonalCost
	opts.DiagonalCost = c.Search.DiagonalCost

	return opts
}

// ReadTimeout returns the server read timeout.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the server keep-alive timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutSeconds) * time.Second
}
