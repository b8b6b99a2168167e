// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Addr            string        `yaml:"addr" validate:"required,hostname_port"`
		DataDir         string        `yaml:"data_dir" validate:"required"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	} `yaml:"app"`

	Log struct {
		Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	Dashboard struct {
		Title    string `yaml:"title" validate:"max=80"`
		Timezone string `yaml:"timezone" validate:"required"`
		JobsFile string `yaml:"jobs_file"` // empty = built-in sample jobs
	} `yaml:"dashboard"`

	RateLimit struct {
		Enabled           bool    `yaml:"enabled"`
		RequestsPerSecond float64 `yaml:"requests_per_second" validate:"gte=0"`
		Burst             int     `yaml:"burst" validate:"gte=0"`
	} `yaml:"rate_limit"`
}

func Default() Config {
	var cfg Config
	cfg.App.Addr = "127.0.0.1:8000"
	cfg.App.DataDir = "."
	cfg.App.ShutdownTimeout = 10 * time.Second
	cfg.Log.Level = "info"
	cfg.Dashboard.Title = "JobPulse Lahore"
	cfg.Dashboard.Timezone = "UTC"
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerSecond = 5
	cfg.RateLimit.Burst = 20
	return cfg
}

// Load reads path on top of Default(), so keys missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Location resolves Dashboard.Timezone. "Local" means the server's zone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Dashboard.Timezone)
}
