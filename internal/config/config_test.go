package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))

	loc, err := Default().Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	yml := "app:\n  addr: \"127.0.0.1:9090\"\ndashboard:\n  timezone: Asia/Karachi\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.App.Addr)
	assert.Equal(t, "Asia/Karachi", cfg.Dashboard.Timezone)
	assert.Equal(t, "JobPulse Lahore", cfg.Dashboard.Title)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOverlayEnv(t *testing.T) {
	env := map[string]string{
		EnvAddr:      "127.0.0.1:7000",
		EnvLogLevel:  " DEBUG ",
		EnvTimezone:  "Europe/Berlin",
		EnvRateLimit: "0",
		EnvShutdown:  "3s",
		EnvJobsFile:  "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.Dashboard.JobsFile = "jobs.yml"
	require.NoError(t, OverlayEnv(&cfg, lookup))

	assert.Equal(t, "127.0.0.1:7000", cfg.App.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Europe/Berlin", cfg.Dashboard.Timezone)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "jobs.yml", cfg.Dashboard.JobsFile, "empty env value must not clear the file setting")
}

func TestOverlayEnv_BadValues(t *testing.T) {
	cfg := Default()
	err := OverlayEnv(&cfg, func(k string) (string, bool) {
		if k == EnvShutdown {
			return "soon", true
		}
		return "", false
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvShutdown)
}

func TestValidate_ReportsYAMLKeys(t *testing.T) {
	cfg := Default()
	cfg.App.Addr = "not an addr"
	cfg.Log.Level = "loud"
	cfg.Dashboard.Timezone = "Mars/Olympus"
	cfg.RateLimit.Burst = 0

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "app.addr must be host:port")
	assert.Contains(t, msg, "log.level must be one of")
	assert.Contains(t, msg, `dashboard.timezone "Mars/Olympus"`)
	assert.Contains(t, msg, "rate_limit.burst must be >= 1")
}

func TestNormalizeAndValidate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobs.yml"), []byte("jobs: []\n"), 0o644))

	cfg := Default()
	cfg.App.DataDir = dir
	cfg.Log.Level = "  WARN "
	cfg.Dashboard.Title = "  Lahore   jobs "
	cfg.Dashboard.JobsFile = "jobs.yml"

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "warn", out.Log.Level)
	assert.Equal(t, "Lahore jobs", out.Dashboard.Title)
	assert.Equal(t, filepath.Join(dir, "jobs.yml"), out.JobsPath())
}

func TestNormalizeAndValidate_Problems(t *testing.T) {
	cfg := Default()
	cfg.App.DataDir = t.TempDir()
	cfg.App.Addr = "0.0.0.0:8000"
	cfg.Dashboard.JobsFile = "missing.yml"
	cfg.RateLimit.Enabled = false

	_, res := NormalizeAndValidate(cfg)
	require.False(t, res.OK())
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "missing.yml")
	assert.Len(t, res.Warnings, 2)
}

func TestNormalizeAndValidate_NoJobsFileWarns(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	assert.True(t, res.OK())
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "built-in sample jobs")
}

func TestJobsPath_Absolute(t *testing.T) {
	cfg := Default()
	abs := filepath.Join(t.TempDir(), "jobs.yml")
	cfg.Dashboard.JobsFile = abs
	assert.Equal(t, abs, cfg.JobsPath())
}

func TestSaveAtomic_KeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	first := Default()
	require.NoError(t, SaveAtomic(path, first))

	second := Default()
	second.App.Addr = "127.0.0.1:9999"
	require.NoError(t, SaveAtomic(path, second))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", got.App.Addr)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, first.App.Addr, bak.App.Addr)

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Dashboard.Timezone = ""

	require.Error(t, SaveAtomic(path, cfg))
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.App.DataDir)

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("app:\n  addr: \"127.0.0.1:1234\"\n"), 0o644))
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1234", cfg.App.Addr)
}

func TestNormalizeAndValidate_ErrorsKeptVerbatim(t *testing.T) {
	cfg := Default()
	cfg.Dashboard.Timezone = "Bad\n- Zone"

	out, res := NormalizeAndValidate(cfg)
	require.Len(t, res.Errors, 1, "a multi-line value must stay one error: %q", res.Errors)
	assert.Equal(t, `dashboard.timezone "Bad\n- Zone" is not a known IANA zone`, res.Errors[0])
	assert.Equal(t, validationMessages(out), res.Errors)

	cfg = Default()
	cfg.App.Addr = "nope"
	cfg.Log.Level = "loud"
	_, res = NormalizeAndValidate(cfg)
	require.Len(t, res.Errors, 2)
	for _, e := range res.Errors {
		assert.NotContains(t, e, "config validation failed")
		assert.False(t, strings.HasPrefix(e, "- "), e)
	}
}
