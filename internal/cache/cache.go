// Package cache provee un cache chico multi-backend.
//
// Se usa para la resolución de identidad (username → fila de usuario) en el
// middleware de auth: los usernames son inmutables y los usuarios no se
// borran, así que un TTL corto es seguro.
//
// Backends:
//   - memory (in-process, default)
//   - redis (distribuido)
package cache

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("cache: not found")

// Client define las operaciones de cache.
type Client interface {
	// Get retorna ErrNotFound si la key no existe o expiró.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set guarda un valor con TTL. Si ttl es 0 usa el default del backend.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
	Close() error
}

// Config para crear un cliente.
type Config struct {
	Kind       string // "memory" | "redis"
	DefaultTTL time.Duration

	Redis struct {
		Addr     string
		Password string
		DB       int
		Prefix   string
	}
}

// New crea el backend configurado. Kind vacío es memory.
func New(cfg Config) (Client, error) {
	switch cfg.Kind {
	case "", "memory":
		return NewMemory(cfg.DefaultTTL), nil
	case "redis":
		return NewRedis(cfg)
	default:
		return nil, errors.New("cache: kind desconocido " + cfg.Kind)
	}
}
