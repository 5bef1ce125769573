package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/config"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/lib/logger/sl"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

// Usage: migrator [-dir migrations] [up|down|status|version|redo|reset]
func main() {
	dir := flag.String("dir", "migrations", "directory holding the SQL migrations")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", sl.Err(err))
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2, MinConns: 1})
	if err != nil {
		slog.Error("failed to connect to database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("failed to set dialect", sl.Err(err))
		os.Exit(1)
	}
	if err := goose.Run(command, sqlDB, *dir, flag.Args()[min(1, flag.NArg()):]...); err != nil {
		slog.Error("migration failed", slog.String("command", command), sl.Err(err))
		os.Exit(1)
	}

	slog.Info("migrations applied", slog.String("command", command))
}
