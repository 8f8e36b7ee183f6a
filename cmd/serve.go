package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/server"
	"github.com/minte-atnafu/Developer-Activity-Dashboard/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the activity API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		store, cleanup, err := buildCache(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		orch := buildOrchestrator(cfg, store)
		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: server.NewHandler(orch),
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Optional background refresher keeps cached batches warm.
		refresh, err := time.ParseDuration(cfg.Cache.RefreshInterval)
		if err != nil {
			return fmt.Errorf("invalid cache.refresh_interval: %w", err)
		}
		var mgrDone chan error
		if refresh > 0 {
			mgr := worker.NewManager(&worker.Refresher{Agg: orch, Interval: refresh})
			mgrDone = make(chan error, 1)
			go func() { mgrDone <- mgr.Start(ctx) }()
			slog.Info("serve: cache refresher enabled", "interval", refresh)
		}

		serveErr := make(chan error, 1)
		go func() {
			slog.Info("serve: listening", "addr", cfg.Server.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
				return
			}
			serveErr <- nil
		}()

		// Signal handling for systemd
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigc:
			log.Printf("received signal: %s, shutting down", s)
		case err := <-serveErr:
			return err
		}

		cancel()
		if mgrDone != nil {
			if err := <-mgrDone; err != nil {
				slog.Error("serve: worker shutdown", "error", err)
			}
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serveErr
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
