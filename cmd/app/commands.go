package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dronedelivery/cmd"
	healthgrpc "dronedelivery/internal/adapters/in/grpc"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and serve HTTP, gRPC health and jobs",
	Long: `Run the service until SIGINT or SIGTERM.

The schema is migrated first. The HTTP API listens on HTTP_PORT, the gRPC
health service on GRPC_PORT when set, and vessel tracking runs on
VESSEL_TRACKING_SCHEDULE when set.`,
	RunE: runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		return a.migrate()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo product catalog",
	RunE: func(c *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if err = a.migrate(); err != nil {
			return err
		}
		root := cmd.NewCompositionRoot(a.cfg, a.db, a.logger)
		created, err := cmd.Seed(c.Context(), &root)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "created %d products\n", created)
		return nil
	},
}

func runServe(c *cobra.Command, _ []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err = a.migrate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cmd.NewCompositionRoot(a.cfg, a.db, a.logger)

	e, err := root.CreateRouter()
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	var health *healthgrpc.HealthServer
	if a.cfg.GRPCPort != "" {
		health = healthgrpc.NewHealthServer(a.logger)
		if err = health.Start(net.JoinHostPort("0.0.0.0", a.cfg.GRPCPort)); err != nil {
			return fmt.Errorf("start gRPC health server: %w", err)
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server started", "port", a.cfg.HTTPPort)
		if startErr := e.Start(net.JoinHostPort("0.0.0.0", a.cfg.HTTPPort)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down")
	case err = <-serveErr:
		if err != nil {
			a.logger.Error("HTTP server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if health != nil {
		errs = append(errs, health.Shutdown(shutdownCtx))
	}
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		errs = append(errs, fmt.Errorf("shutdown HTTP server: %w", shutdownErr))
	}
	return errors.Join(append(errs, err)...)
}
