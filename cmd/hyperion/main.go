package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagacious-labs/hyperion/pkg/api"
	"github.com/sagacious-labs/hyperion/pkg/config"
	"github.com/sagacious-labs/hyperion/pkg/controller"
	"github.com/sagacious-labs/hyperion/pkg/health"
	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/manager"
	"github.com/sagacious-labs/hyperion/pkg/metrics"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hyperion",
	Short: "Hyperion - single-node module orchestrator",
	Long: `Hyperion supervises a registry of out-of-process modules,
acquiring their binaries, running them under a restart-with-backoff
supervision loop, and relaying their stdin/stdout as mail over a
topic-based event bus.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.LogJSON,
	})
	logger := log.WithComponent("main")

	mgr := manager.New(controller.Options{
		TempDir:         cfg.TempDir,
		MaxBackoff:      cfg.MaxBackoff(),
		DownloadTimeout: cfg.DownloadTimeout(),
	})

	collector := metrics.NewCollector(mgr)
	collector.Start()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", health.Handler())
	go func() {
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server exited")
		}
	}()
	logger.Info().Str("addr", cfg.MetricsAddr).Msg("metrics and health server listening")

	srv := api.NewServer(mgr)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(cfg.Addr()); err != nil {
			errCh <- err
		}
	}()

	health.MarkReady()
	logger.Info().Str("addr", cfg.Addr()).Msg("hyperion ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info().Msg("shutting down")
	case err := <-errCh:
		collector.Stop()
		return fmt.Errorf("gRPC server: %w", err)
	}

	collector.Stop()
	srv.Stop()
	return nil
}
