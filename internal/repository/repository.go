package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pinkman07/TaksApprovalSystem/internal/config"
)

var (
	ErrNotFound = errors.New("not found")
)

func NewConnection(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	deadline := time.After(cfg.Timeout)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn, err := pgxpool.New(ctx, dsn)
			if err != nil {
				continue
			}
			if err = conn.Ping(ctx); err != nil {
				continue
			}
			slog.Info("connected to database", "host", cfg.Host, "dbname", cfg.DBName)
			return conn, nil

		case <-deadline:
			return nil, fmt.Errorf("unable to connect to database")
		}
	}
}
