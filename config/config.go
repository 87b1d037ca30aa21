/*
Package config holds the server process configuration.

PURPOSE:
  Where the server listens, which origins may call it, how verbose it logs,
  and whether /metrics is exposed. The incentive plan itself (targets, tiers,
  booster) is fixed in code and is deliberately absent here.

SOURCES (later wins):
  1. Default()
  2. Config file: .toml (BurntSushi/toml) or .yaml/.yml (yaml.v3)
  3. .env file in the working directory, if present (godotenv)
  4. Environment variables:
       INCENTIVE_HOST, INCENTIVE_PORT, INCENTIVE_LOG_LEVEL,
       INCENTIVE_METRICS_ENABLED, INCENTIVE_CORS_ORIGINS (comma separated)

EXAMPLE (incentive.toml):
  [server]
  port = 9090
  shutdown_timeout = "10s"

  [cors]
  allowed_origins = ["https://sales.example.com"]

  [log]
  level = "debug"
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full process configuration.
type Config struct {
	Server  ServerConfig  `toml:"server" yaml:"server"`
	CORS    CORSConfig    `toml:"cors" yaml:"cors"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

type ServerConfig struct {
	Host            string   `toml:"host" yaml:"host"`
	Port            int      `toml:"port" yaml:"port"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     Duration `toml:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins" yaml:"allowed_origins"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

type MetricsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// Duration is a time.Duration written as "15s" in config files.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			IdleTimeout:     Duration{60 * time.Second},
			ShutdownTimeout: Duration{30 * time.Second},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		},
		Log:     LogConfig{Level: "info"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config %s: unsupported extension %q", path, filepath.Ext(path))
	}
	return cfg, nil
}

// ApplyEnv loads envFile (ignored when missing) and applies INCENTIVE_*
// variables over cfg.
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv("INCENTIVE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("INCENTIVE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("INCENTIVE_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("INCENTIVE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("INCENTIVE_METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("INCENTIVE_METRICS_ENABLED: %w", err)
		}
		c.Metrics.Enabled = enabled
	}
	if v := os.Getenv("INCENTIVE_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	return nil
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for name, d := range map[string]Duration{
		"read_timeout":     c.Server.ReadTimeout,
		"write_timeout":    c.Server.WriteTimeout,
		"idle_timeout":     c.Server.IdleTimeout,
		"shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d.Duration <= 0 {
			return fmt.Errorf("server.%s must be positive", name)
		}
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q: want debug, info, warn or error", level)
}
