package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*core.User, error) {
	var u core.User
	err := s.pool.QueryRow(ctx, `
		INSERT INTO app_user (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`, username, passwordHash).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, core.ErrConflict
		}
		logger.L().Error("pg create user", logger.Username(username), logger.Err(err))
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	var u core.User
	err := s.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		  FROM app_user
		 WHERE username = $1
	`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
