// Package config loads the picoCPUStat server configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables (HOST_PROC, HOST_SYS, PICOCPUSTAT_BIND,
// PICOCPUSTAT_PORT). Command-line flags are applied last by main.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CristiGvl/picoCPUStat/internal/fsutil"
)

// Config is the complete server configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Host   HostConfig   `yaml:"host"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	// Bind is the IP address to listen on.
	Bind string `yaml:"bind"`

	// Port is the TCP port to listen on.
	Port int `yaml:"port"`

	// RequestTimeout bounds each telemetry read made by a handler.
	// Default: 10s
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// HostConfig locates the kernel pseudo-filesystems to read
type HostConfig struct {
	Proc string `yaml:"proc"`
	Sys  string `yaml:"sys"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Bind:           "0.0.0.0",
			Port:           8080,
			RequestTimeout: 10 * time.Second,
		},
		Host: HostConfig{
			Proc: fsutil.DefaultProcRoot,
			Sys:  fsutil.DefaultSysRoot,
		},
	}
}

// Load returns the defaults merged with the file at path, if any, and the
// environment. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("HOST_PROC"); v != "" {
		c.Host.Proc = v
	}
	if v := os.Getenv("HOST_SYS"); v != "" {
		c.Host.Sys = v
	}
	if v := os.Getenv("PICOCPUSTAT_BIND"); v != "" {
		c.Server.Bind = v
	}
	if v := os.Getenv("PICOCPUSTAT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PICOCPUSTAT_PORT: %w", err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Bind == "" {
		errs = append(errs, fmt.Errorf("server.bind is required"))
	} else if net.ParseIP(c.Server.Bind) == nil {
		errs = append(errs, fmt.Errorf("server.bind %q is not an IP address", c.Server.Bind))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}

	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout must be positive"))
	}

	if c.Host.Proc == "" {
		errs = append(errs, fmt.Errorf("host.proc is required"))
	}
	if c.Host.Sys == "" {
		errs = append(errs, fmt.Errorf("host.sys is required"))
	}

	return errors.Join(errs...)
}

// Roots returns the pseudo-filesystem roots for the readers
func (c *Config) Roots() fsutil.Roots {
	return fsutil.Roots{Proc: c.Host.Proc, Sys: c.Host.Sys}
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Bind, strconv.Itoa(c.Server.Port))
}
