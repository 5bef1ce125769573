package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	// Check reports whether the database is reachable
	Check(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	db      Pinger
	timeout time.Duration
	logger  *slog.Logger
}

func NewHealthHandler(db Pinger, logger *slog.Logger) HealthHandler {
	return &healthHandlerImpl{db: db, timeout: 2 * time.Second, logger: logger}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health
func (h *healthHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "health check failed", sl.Err(err))
		response.ServiceUnavailable(w, "Database unavailable", healthStatus{Status: "unhealthy", Database: "down"})
		return
	}

	response.Success(w, healthStatus{Status: "ok", Database: "up"})
}
