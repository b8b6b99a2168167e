package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// JobsPath resolves Dashboard.JobsFile; relative paths are taken from the
// data dir. Empty means the built-in sample jobs.
func (c Config) JobsPath() string {
	p := strings.TrimSpace(c.Dashboard.JobsFile)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.App.DataDir, p)
}

// NormalizeAndValidate returns a trimmed copy of cfg plus every problem
// found, including ones that need the filesystem.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.App.DataDir = strings.TrimSpace(out.App.DataDir)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))
	out.Dashboard.Title = strings.Join(strings.Fields(out.Dashboard.Title), " ")
	out.Dashboard.Timezone = strings.TrimSpace(out.Dashboard.Timezone)
	out.Dashboard.JobsFile = strings.TrimSpace(out.Dashboard.JobsFile)

	// ---- Validation rules ----

	res.Errors = append(res.Errors, validationMessages(out)...)

	// jobs file
	if p := out.JobsPath(); p == "" {
		res.addWarn("dashboard.jobs_file is empty; serving the built-in sample jobs.")
	} else if st, err := os.Stat(p); err != nil {
		res.addErr("dashboard.jobs_file %q: %v", p, err)
	} else if st.IsDir() {
		res.addErr("dashboard.jobs_file %q is a directory", p)
	}

	// listener sanity
	if host, _, err := net.SplitHostPort(out.App.Addr); err == nil {
		if host == "" || host == "0.0.0.0" || host == "::" {
			res.addWarn("app.addr %q listens on all interfaces.", out.App.Addr)
		}
	}

	// rate limit sanity
	if !out.RateLimit.Enabled {
		res.addWarn("rate_limit is disabled.")
	} else if out.RateLimit.RequestsPerSecond == 0 {
		res.addWarn("rate_limit.requests_per_second is 0; only the initial burst of %d requests per client is served.", out.RateLimit.Burst)
	} else if out.RateLimit.RequestsPerSecond > 1000 {
		res.addWarn("rate_limit.requests_per_second is very high (%.0f).", out.RateLimit.RequestsPerSecond)
	}

	if out.App.ShutdownTimeout == 0 {
		res.addWarn("app.shutdown_timeout is 0; in-flight requests are cut off on shutdown.")
	}

	return out, res
}
