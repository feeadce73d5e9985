// Command tabstop runs a configured scene in the terminal: a document whose
// tab order is rearranged by tab-stop portals and arrow-key groups.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/tabstop/pkg/config"
	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/logging"
	"github.com/odvcencio/tabstop/pkg/scene"
	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/backend/tcell"
	"github.com/odvcencio/tabstop/pkg/ui/runtime"
)

type backendFactory func() (backend.Backend, error)

func terminalBackend() (backend.Backend, error) {
	be, err := tcell.New()
	if err != nil {
		return nil, err
	}
	return be, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr, terminalBackend)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabstop: %v\n", err)
	}
	os.Exit(exitCodeForError(err))
}

func run(ctx context.Context, args []string, stderr io.Writer, newBackend backendFactory) error {
	fs := flag.NewFlagSet("tabstop", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "layout config file (default: built-in demo scene)")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	logFile := fs.String("log-file", "", "append JSON logs to this file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil
		}
		return withExitCode(err, exitUsage)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}
	if *metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return withExitCode(err, exitConfig)
	}

	logger, closeLog, err := openLogger(cfg.Logging)
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	defer closeLog()

	sc, err := scene.Build(cfg, scene.WithLogger(logger))
	if err != nil {
		return withExitCode(err, exitConfig)
	}
	defer sc.Close()

	var metricsLn net.Listener
	if cfg.Metrics.Enabled {
		metricsLn, err = net.Listen("tcp", cfg.Metrics.Addr)
		if err != nil {
			return withExitCode(errors.Wrap(err, errors.ErrCodeConfigInvalid, "listen for metrics").
				WithContext("addr", cfg.Metrics.Addr), exitConfig)
		}
	}

	be, err := newBackend()
	if err != nil {
		if metricsLn != nil {
			_ = metricsLn.Close()
		}
		return withExitCode(err, exitRun)
	}
	app, err := runtime.NewApp(runtime.AppConfig{
		Backend:    be,
		Document:   sc.Document,
		Logger:     logger,
		StatusLine: cfg.UI.StatusLine,
	})
	if err != nil {
		return withExitCode(err, exitRun)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Quitting the app stops the metrics server too.
		defer cancel()
		return app.Run(gctx)
	})
	if metricsLn != nil {
		g.Go(func() error {
			return serveMetrics(gctx, metricsLn, logger)
		})
	}

	if err := g.Wait(); err != nil && !stderrors.Is(err, context.Canceled) {
		return withExitCode(err, exitRun)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		config.ApplyEnvOverrides(cfg)
		return cfg, nil
	}
	return config.Load(path)
}

// openLogger opens the configured log file. Without one, logs are
// discarded: the terminal belongs to the UI.
func openLogger(cfg config.LoggingConfig) (*logging.Logger, func(), error) {
	if cfg.File == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "open log file").
			WithContext("path", cfg.File)
	}
	logger := logging.NewLogger(f, "tabstop", logging.ParseLevel(cfg.Level))
	return logger, func() { _ = f.Close() }, nil
}
