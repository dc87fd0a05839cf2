package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/taskjohn/internal/cache"
	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

// Resolver resuelve el username verificado de un token a la fila de usuario,
// con un cache read-through. Seguro con TTL corto: los usernames son
// inmutables y los usuarios no se borran.
type Resolver struct {
	Repo  core.UserRepository
	Cache cache.Client
	TTL   time.Duration
}

// cachedUser es la proyección pública que viaja al cache (sin hash).
type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResolver(repo core.UserRepository, c cache.Client, ttl time.Duration) *Resolver {
	return &Resolver{Repo: repo, Cache: c, TTL: ttl}
}

// Resolve retorna el usuario (sin password hash) para un username ya
// verificado por firma. core.ErrNotFound si el token refiere a un usuario
// que no existe.
func (r *Resolver) Resolve(ctx context.Context, username string) (*core.User, error) {
	key := "user:" + username

	if r.Cache != nil {
		if b, err := r.Cache.Get(ctx, key); err == nil {
			var cu cachedUser
			if json.Unmarshal(b, &cu) == nil && cu.Username == username {
				return &core.User{ID: cu.ID, Username: cu.Username, CreatedAt: cu.CreatedAt}, nil
			}
		}
	}

	u, err := r.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if r.Cache != nil {
		b, err := json.Marshal(cachedUser{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
		if err == nil {
			if err := r.Cache.Set(ctx, key, b, r.TTL); err != nil {
				logger.From(ctx).Debug("identity cache set failed", logger.Err(err))
			}
		}
	}

	return &core.User{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}, nil
}
