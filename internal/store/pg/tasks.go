package pg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

// Todas las queries de tareas llevan el filtro de ownership (user_id) en la
// sentencia misma. Nunca se hace delete-then-check ni fetch sin owner.

func (s *Store) CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*core.Task, error) {
	var t core.Task
	err := s.pool.QueryRow(ctx, `
		INSERT INTO task (title, description, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, status, user_id, created_at
	`, title, description, core.StatusOpen, ownerID).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		logger.L().Error("pg create task", logger.UserID(ownerID.String()), logger.Err(err))
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListTasks(ctx context.Context, ownerID uuid.UUID, f core.TaskFilter) ([]core.Task, error) {
	q := `
		SELECT id, title, description, status, user_id, created_at
		  FROM task
		 WHERE user_id = $1`
	args := []any{ownerID}

	if f.Status != nil {
		args = append(args, *f.Status)
		q += ` AND status = $2`
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		if f.Status != nil {
			q += ` AND (title ILIKE $3 OR description ILIKE $3)`
		} else {
			q += ` AND (title ILIKE $2 OR description ILIKE $2)`
		}
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []core.Task{}
	for rows.Next() {
		var t core.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*core.Task, error) {
	var t core.Task
	err := s.pool.QueryRow(ctx, `
		SELECT id, title, description, status, user_id, created_at
		  FROM task
		 WHERE id = $1 AND user_id = $2
	`, taskID, ownerID).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// UpdateTaskStatus es un único UPDATE con filtro id+owner: atómico a nivel de
// fila, sin fetch-then-save.
func (s *Store) UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status core.TaskStatus) (*core.Task, error) {
	var t core.Task
	err := s.pool.QueryRow(ctx, `
		UPDATE task
		   SET status = $1
		 WHERE id = $2 AND user_id = $3
		RETURNING id, title, description, status, user_id, created_at
	`, status, taskID, ownerID).
		Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.OwnerID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM task
		 WHERE id = $1 AND user_id = $2
	`, taskID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return core.ErrNotFound
	}
	return nil
}
