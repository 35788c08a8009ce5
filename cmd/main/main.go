package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/plutus/internal/config"
	"github.com/UnknownOlympus/plutus/internal/lib/logger/sl"
	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/repository"
	"github.com/UnknownOlympus/plutus/internal/services/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zoobzio/clockz"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)

	err := run(ctx, logger, cfg)
	stop()
	if err != nil {
		logger.Error("Report failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	roster, err := repository.LoadSeed(repository.DefaultSeed)
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	opts := report.DefaultOptions()
	opts.ExcludedName = cfg.Report.ExcludedName
	opts.RaiseFactor = cfg.Report.RaiseFactor
	opts.MinimumWage = cfg.Report.MinimumWage

	rpt := report.New(logger, appMetrics, clockz.RealClock, opts)

	out := bufio.NewWriter(os.Stdout)
	if err = rpt.Run(ctx, out, roster); err != nil {
		_ = out.Flush()
		return fmt.Errorf("failed to run report: %w", err)
	}
	if err = out.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.Metrics.Textfile != "" {
		if err = metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			logger.WarnContext(ctx, "Metrics were not exported", "path", cfg.Metrics.Textfile, sl.Err(err))
		}
	}

	return nil
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr; stdout carries only the report.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{Key: "", Value: slog.Value{}}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}
