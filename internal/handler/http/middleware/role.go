package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
)

// RequirePermission lets the request through only when the caller's role
// grants permission. Must run after AuthRequired.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := jwt.CallerFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(caller.Role, permission) {
				slog.DebugContext(r.Context(), "permission denied",
					slog.String("user_id", caller.UserID),
					slog.String("role", string(caller.Role)),
					slog.String("permission", string(permission)),
				)
				response.HandleError(w, fmt.Errorf("%w: %s", user.ErrInsufficientPermissions, permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
