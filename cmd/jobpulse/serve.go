package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobpulse/internal/config"
	"jobpulse/internal/httpapi"
	"jobpulse/internal/instance"
)

var (
	serveAddr     string
	serveJobsFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long:  "Loads the job dataset once and serves the dashboard, a JSON view at /jobs, /health and /metrics until interrupted.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address host:port (overrides app.addr)")
	serveCmd.Flags().StringVar(&serveJobsFile, "jobs", "", "Path to jobs YAML (overrides dashboard.jobs_file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, res, path, err := resolveConfig(configOptions{
		DataDir:    flagDataDir,
		ConfigPath: flagConfigPath,
		Bootstrap:  true,
		Override: func(c *config.Config) {
			if serveAddr != "" {
				c.App.Addr = serveAddr
			}
			if serveJobsFile != "" {
				c.Dashboard.JobsFile = serveJobsFile
			}
		},
	})
	if err != nil {
		return err
	}
	if err := validationError(path, res); err != nil {
		return err
	}

	a, err := newApp(cfg, res)
	if err != nil {
		return err
	}
	defer func() { _ = a.Logger.Sync() }()

	lock, err := instance.Acquire(cfg.App.DataDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	deps := httpapi.Deps{
		Logger:    a.Logger,
		Dashboard: a.Dashboard,
		Renderer:  a.Renderer,
	}
	if cfg.RateLimit.Enabled {
		deps.Limiter = httpapi.NewClientLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.App.Addr, err)
	}

	srv := &http.Server{
		Handler:           httpapi.NewHandler(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          zap.NewStdLog(a.Logger.Named("http")),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger.Info("listening",
		zap.String("url", "http://"+ln.Addr().String()),
		zap.String("config", path),
		zap.String("data_dir", cfg.App.DataDir),
		zap.Int("jobs", a.Store.Len()),
	)

	return serveUntilDone(ctx, srv, ln, cfg.App.ShutdownTimeout, a.Logger)
}

// serveUntilDone runs srv on ln until ctx is cancelled or the server fails,
// then drains in-flight requests for at most grace.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("grace", grace))
		if grace <= 0 {
			return srv.Close()
		}
		sctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
