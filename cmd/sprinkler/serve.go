package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"SmartSprinkler.dashboard/internal/config"
	"SmartSprinkler.dashboard/internal/controller"
	"SmartSprinkler.dashboard/internal/irrigation"
	"SmartSprinkler.dashboard/internal/metrics"
	"SmartSprinkler.dashboard/internal/middleware"
	"SmartSprinkler.dashboard/internal/repository"
	"SmartSprinkler.dashboard/internal/routes"
	"SmartSprinkler.dashboard/internal/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	setupLogger(cfg.SlogLevel())

	labels, err := config.LoadLabels(cfg.LabelsFile)
	if err != nil {
		return err
	}
	handler, err := buildHandler(cfg, labels)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server is running", "url", fmt.Sprintf("http://localhost:%s", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// buildHandler wires repository, service, controller and router, then
// wraps the router with CORS and request logging.
func buildHandler(cfg config.Config, labels []string) (http.Handler, error) {
	state, err := repository.NewInputState(labels)
	if err != nil {
		return nil, err
	}
	recorder := metrics.NewRecorder()
	svc := service.NewDashboardService(state, irrigation.NewDefaultClassifier(), recorder)
	ctrl := controller.NewDashboardController(svc)

	opts := routes.Options{Metrics: recorder.Handler()}
	if cfg.Auth0.Enabled() {
		requireToken, err := middleware.NewAuth0Middleware(cfg.Auth0)
		if err != nil {
			return nil, err
		}
		opts.RequireToken = requireToken
		slog.Info("JWT validation enabled for API updates", "issuer", cfg.Auth0.Issuer)
	}
	router := routes.SetupRouter(ctrl, opts)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	return middleware.RequestLogger(c.Handler(router)), nil
}
