package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/focusloop/internal/httpapi"
	"github.com/abhisek/focusloop/internal/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, version, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing shutdown failed")
		}
	}()

	rt, err := buildRuntime(ctx, cmd, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	orch := rt.engine.Orchestrator()
	restored, err := orch.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore sessions: %w", err)
	}

	srv := httpapi.NewServer(httpapi.NewHandler(rt.engine, version, log), cfg.Server)
	log.WithFields(logrus.Fields{
		"addr":     cfg.Server.Addr,
		"driver":   cfg.Database.Driver,
		"restored": restored,
		"redis":    rt.redis != nil,
	}).Info("focusloop listening")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	g.Go(func() error { return orch.RunSweeper(gctx) })
	g.Go(func() error { return rt.writer.Run(gctx) })
	g.Go(func() error { return rt.relay.Run(gctx) })

	return g.Wait()
}
