package main

import (
	"net/http"
	"os"
	"time"

	"rdfpoker/internal/config"
	"rdfpoker/internal/db"
	"rdfpoker/internal/server"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rdfpoker",
	})

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn("failed to load .env", "err", err)
	}
	cfg := config.Load()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", "err", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		logger.Fatal("database handle unavailable", "err", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)

	if err := db.Migrate(conn); err != nil {
		logger.Fatal("database migration failed", "err", err)
	}

	srv := server.New(conn, cfg, logger)
	addr := ":" + cfg.Port
	logger.Info("rdfpoker server listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
