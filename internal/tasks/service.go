// Package tasks expone las operaciones de tareas con scoping por identidad.
//
// Cada operación recibe el owner como parámetro obligatorio: el scoping no es
// opcional ni se aplica después, viaja hasta el predicado de la query. Un id
// inexistente y un id de otro usuario producen exactamente el mismo
// core.ErrNotFound.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

type Deps struct {
	Repo core.TaskRepository
}

type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// List retorna las tareas del owner, filtradas por status/search si vienen.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, f core.TaskFilter) ([]core.Task, error) {
	out, err := s.deps.Repo.ListTasks(ctx, ownerID, f)
	if err != nil {
		logger.From(ctx).Error("list tasks failed", logger.Err(err))
		return nil, fmt.Errorf("tasks: list: %w", err)
	}
	return out, nil
}

// Get retorna core.ErrNotFound para id inexistente o ajeno, sin distinguir.
func (s *Service) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*core.Task, error) {
	t, err := s.deps.Repo.GetTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrNotFound
		}
		logger.From(ctx).Error("get task failed", logger.TaskID(taskID.String()), logger.Err(err))
		return nil, fmt.Errorf("tasks: get: %w", err)
	}
	return t, nil
}

// Create ignora cualquier id/status que venga del caller: siempre id fresco,
// status OPEN y owner = identidad actuante.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, title, description string) (*core.Task, error) {
	t, err := s.deps.Repo.CreateTask(ctx, ownerID, title, description)
	if err != nil {
		logger.From(ctx).Error("create task failed", logger.Err(err))
		return nil, fmt.Errorf("tasks: create: %w", err)
	}
	logger.From(ctx).Info("task created",
		logger.TaskID(t.ID.String()), logger.UserID(ownerID.String()))
	return t, nil
}

// UpdateStatus muta el status vía una única sentencia con filtro de ownership.
func (s *Service) UpdateStatus(ctx context.Context, ownerID, taskID uuid.UUID, status core.TaskStatus) (*core.Task, error) {
	if !status.Valid() {
		return nil, core.ErrInvalid
	}
	t, err := s.deps.Repo.UpdateTaskStatus(ctx, ownerID, taskID, status)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrNotFound
		}
		logger.From(ctx).Error("update status failed", logger.TaskID(taskID.String()), logger.Err(err))
		return nil, fmt.Errorf("tasks: update status: %w", err)
	}
	return t, nil
}

// Delete borra con predicado id+owner en la misma sentencia.
func (s *Service) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	err := s.deps.Repo.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.ErrNotFound
		}
		logger.From(ctx).Error("delete task failed", logger.TaskID(taskID.String()), logger.Err(err))
		return fmt.Errorf("tasks: delete: %w", err)
	}
	logger.From(ctx).Info("task deleted",
		logger.TaskID(taskID.String()), logger.UserID(ownerID.String()))
	return nil
}
