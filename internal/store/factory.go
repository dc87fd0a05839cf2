// Package store selecciona el driver de persistencia según configuración.
package store

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/taskjohn/internal/config"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
	"github.com/dropDatabas3/taskjohn/internal/store/memory"
	"github.com/dropDatabas3/taskjohn/internal/store/pg"
)

// Open crea el core.Repository para el driver configurado.
// Drivers soportados: "postgres" (default), "memory".
func Open(ctx context.Context, cfg *config.Config) (core.Repository, error) {
	switch cfg.Storage.Driver {
	case "", "postgres", "pg":
		if cfg.Storage.DSN == "" {
			return nil, fmt.Errorf("store: storage.dsn requerido para driver postgres")
		}
		return pg.New(ctx, cfg.Storage.DSN, pg.Config{
			MaxOpenConns:    cfg.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.ConnMaxLifetime,
		})
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("store: driver desconocido %q", cfg.Storage.Driver)
	}
}
