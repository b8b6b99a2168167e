package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobpulse/internal/config"
	"jobpulse/internal/dashboard"
	"jobpulse/internal/logging"
	"jobpulse/internal/render"
	"jobpulse/internal/store"
)

type configOptions struct {
	DataDir    string // --data-dir
	ConfigPath string // --config
	// Bootstrap writes the default config into the data dir when it has none.
	Bootstrap bool
	Lookup    func(string) (string, bool)
	// Override applies command flags after file and env.
	Override func(*config.Config)
}

// resolveConfig layers defaults, the YAML file, JOBPULSE_* env and flags, in
// that order, then normalizes the result.
func resolveConfig(o configOptions) (config.Config, config.Validation, string, error) {
	lookup := o.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	dataDir := strings.TrimSpace(o.DataDir)
	if dataDir == "" {
		if v, ok := lookup(config.EnvDataDir); ok && strings.TrimSpace(v) != "" {
			dataDir = strings.TrimSpace(v)
		} else {
			dataDir = "."
		}
	}

	path := o.ConfigPath
	if path == "" {
		path = filepath.Join(dataDir, config.FileName)
		if o.Bootstrap {
			var err error
			if path, err = config.EnsureUserConfig(dataDir); err != nil {
				return config.Config{}, config.Validation{}, "", fmt.Errorf("config bootstrap failed: %w", err)
			}
		}
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && o.ConfigPath == "":
		cfg = config.Default()
		cfg.App.DataDir = dataDir
	default:
		return config.Config{}, config.Validation{}, path, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if err := config.OverlayEnv(&cfg, lookup); err != nil {
		return config.Config{}, config.Validation{}, path, err
	}
	if o.DataDir != "" {
		cfg.App.DataDir = o.DataDir
	}
	if o.Override != nil {
		o.Override(&cfg)
	}

	out, res := config.NormalizeAndValidate(cfg)
	return out, res, path, nil
}

// validationError folds a failed Validation into one error.
func validationError(path string, res config.Validation) error {
	if res.OK() {
		return nil
	}
	return fmt.Errorf("invalid config (%s):\n- %s", path, strings.Join(res.Errors, "\n- "))
}

type app struct {
	Config    config.Config
	Logger    *zap.Logger
	Store     *store.Store
	Dashboard *dashboard.Dashboard
	Renderer  *render.Renderer
}

// newApp builds everything the commands share from an already validated
// config.
func newApp(cfg config.Config, res config.Validation) (*app, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	now := time.Now().In(loc)

	var (
		s   *store.Store
		rep store.Report
	)
	if p := cfg.JobsPath(); p != "" {
		s, rep, err = store.Load(p, now)
	} else {
		s, rep, err = store.Default(now)
	}
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	for _, u := range rep.Duplicates {
		log.Warn("duplicate apply_url dropped", zap.String("apply_url", u))
	}
	log.Info("jobs loaded",
		zap.Int("count", rep.Loaded),
		zap.String("file", cfg.JobsPath()),
		zap.String("timezone", loc.String()),
	)

	r, err := render.New(cfg.Dashboard.Title)
	if err != nil {
		return nil, err
	}

	return &app{
		Config:    cfg,
		Logger:    log,
		Store:     s,
		Dashboard: dashboard.New(s, dashboard.WithLocation(loc)),
		Renderer:  r,
	}, nil
}
