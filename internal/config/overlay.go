// config/overlay.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment overrides, applied after the YAML file and before CLI flags.
const (
	EnvDataDir   = "JOBPULSE_DATA_DIR"
	EnvAddr      = "JOBPULSE_ADDR"
	EnvJobsFile  = "JOBPULSE_JOBS_FILE"
	EnvLogLevel  = "JOBPULSE_LOG_LEVEL"
	EnvTimezone  = "JOBPULSE_TIMEZONE"
	EnvRateLimit = "JOBPULSE_RATE_LIMIT_RPS"
	EnvShutdown  = "JOBPULSE_SHUTDOWN_TIMEOUT"
)

// OverlayEnv copies any set JOBPULSE_* variable onto cfg. lookup is
// os.LookupEnv outside tests.
func OverlayEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvDataDir); ok {
		cfg.App.DataDir = v
	}
	if v, ok := get(EnvAddr); ok {
		cfg.App.Addr = v
	}
	if v, ok := get(EnvJobsFile); ok {
		cfg.Dashboard.JobsFile = v
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get(EnvTimezone); ok {
		cfg.Dashboard.Timezone = v
	}
	if v, ok := get(EnvRateLimit); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit.RequestsPerSecond = rps
		cfg.RateLimit.Enabled = rps > 0
	}
	if v, ok := get(EnvShutdown); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvShutdown, err)
		}
		cfg.App.ShutdownTimeout = d
	}
	return nil
}
