package http

import (
	"log/slog"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/text/language"
)

type RouterOptions struct {
	Logger          *slog.Logger
	LogLevel        slog.Level
	AllowedOrigins  []string
	DefaultLanguage language.Tag
	Gatherer        prometheus.Gatherer
	Metrics         *metrics.Metrics
}

type Handlers struct {
	EmployeeDashboard EmployeeDashboardHandler
	Health            HealthHandler
	Avatar            AvatarHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Metrics(opts.Metrics))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", h.Health.Check)
	r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/avatars/*", h.Avatar.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
			r.Use(middleware.Language(opts.DefaultLanguage))

			r.Route("/dashboard", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionDashboardViewOwn)).
					Get("/tiles", h.EmployeeDashboard.GetTiles)
			})
		})
	})
	return r
}
