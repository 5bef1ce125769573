package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/config"
	appHTTP "github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/i18n"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/otel"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/repository/postgresql"
	employeeDashboardService "github.com/cmlabs-hris/employee-dashboard-go/internal/service/employee_dashboard"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/text/language"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.Telemetry.ServiceName),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to flush traces", sl.Err(err))
		}
	}()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	avatars, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL, cfg.Storage.DefaultAvatar)
	if err != nil {
		return fmt.Errorf("init avatar storage: %w", err)
	}

	defaultLanguage, ok := i18n.ParseTag(cfg.App.DefaultLanguage)
	if !ok {
		defaultLanguage = language.AmericanEnglish
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	// Repositories
	empDashboardRepo := postgresql.NewEmployeeDashboardRepository(db.Pool, m)

	// Services
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(
		empDashboardRepo,
		avatars,
		m,
		logger,
		employeeDashboardService.Settings{
			Location:        cfg.Location(),
			DefaultLanguage: defaultLanguage,
		},
	)

	// Handlers
	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:          logger,
			LogLevel:        cfg.SlogLevel(),
			AllowedOrigins:  cfg.App.AllowedOrigins,
			DefaultLanguage: defaultLanguage,
			Gatherer:        registry,
			Metrics:         m,
		},
		JWTService,
		appHTTP.Handlers{
			EmployeeDashboard: appHTTP.NewEmployeeDashboardHandler(empDashboardSvc),
			Health:            appHTTP.NewHealthHandler(db, logger),
			Avatar:            appHTTP.NewAvatarHandler(avatars, logger),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
