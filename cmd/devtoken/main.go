// Command devtoken prints an access token signed with JWT_SECRET_KEY so the
// dashboard can be called locally without the HRIS auth service.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/config"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token")
	employeeID := flag.String("employee", "", "employee id (optional)")
	role := flag.String("role", string(user.RoleEmployee), "owner, manager, employee or pending")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := env.ParseAs[config.JWTConfig]()
	if err != nil || cfg.Secret == "" {
		slog.Error("JWT_SECRET_KEY is required", sl.Err(err))
		os.Exit(1)
	}

	var employee *string
	if *employeeID != "" {
		employee = employeeID
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.Secret).GenerateAccessToken(*userID, employee, user.Role(*role), *ttl)
	if err != nil {
		slog.Error("failed to sign token", sl.Err(err))
		os.Exit(1)
	}

	fmt.Println(token)
	slog.Info("token issued", slog.String("user_id", *userID), slog.Time("expires_at", time.Unix(expiresAt, 0)))
}
