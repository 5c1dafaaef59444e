package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seedbox-mover/core/loader"
	"seedbox-mover/core/logger"
	"seedbox-mover/core/metrics"
	"seedbox-mover/core/middleware/auth"
	"seedbox-mover/core/middleware/rayid"
	"seedbox-mover/feature/health"
	"seedbox-mover/feature/prune"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "seedbox-mover/docs/swagger"
)

// @title Seedbox Mover API
// @version 1.0
// @description Reconcile a seedbox download client with Radarr and prune aged-out torrents.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP server exposing candidate listing, pruning, health checks, metrics and API docs.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newApp builds the Fiber application with middleware, public routes and features.
func newApp(mgr *loader.Manager, reg *prometheus.Registry, apiKey string, l *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		rl := logger.WithRayID(l, c)
		rl.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			rl.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public routes
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	app.Use(auth.New(auth.Config{ApiKey: apiKey, Skip: []string{"/metrics", "/swagger", "/health"}}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	defer d.Close()
	zap.ReplaceGlobals(d.logger)

	if d.cfg.Server.ApiKey == "" {
		d.logger.Warn("server.api_key is empty; the API is unauthenticated")
	}

	svc, err := d.service(context.Background())
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.Register(reg)

	mgr := loader.NewManager()
	mgr.Register(prune.NewFeature(svc, d.cfg.Server, d.logger))
	mgr.Register(health.NewFeature(health.NewService(d.torrents, d.media, d.logger)))

	app, err := newApp(mgr, reg, d.cfg.Server.ApiKey, d.logger)
	if err != nil {
		return fmt.Errorf("failed to load features: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		d.logger.Info("Starting server",
			zap.String("port", d.cfg.Server.Port),
			zap.Strings("features", mgr.Loaded()),
		)
		errCh <- app.Listen(":" + d.cfg.Server.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-sig:
		d.logger.Info("Shutting down server...")
		return app.Shutdown()
	}
}
