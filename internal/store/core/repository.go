package core

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository persiste credenciales. La unicidad de username la garantiza
// el storage (constraint atómica), no un check previo de aplicación.
type UserRepository interface {
	// CreateUser inserta {username, passwordHash}. Retorna ErrConflict si el
	// username ya existe (violación de UNIQUE, incluida la carrera entre dos
	// signups concurrentes).
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)

	// GetUserByUsername es un lookup puro. Retorna ErrNotFound si no existe.
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// TaskRepository persiste tareas. Cada operación recibe el owner y el
// predicado de ownership forma parte de la query misma (no se chequea después).
type TaskRepository interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*Task, error)

	// ListTasks retorna las tareas del owner, ya filtradas por status/search.
	// Sin orden garantizado.
	ListTasks(ctx context.Context, ownerID uuid.UUID, f TaskFilter) ([]Task, error)

	// GetTask retorna ErrNotFound tanto si el id no existe como si pertenece
	// a otro owner.
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*Task, error)

	// UpdateTaskStatus muta el status en una sola sentencia con filtro de
	// ownership y retorna la tarea actualizada, o ErrNotFound.
	UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status TaskStatus) (*Task, error)

	// DeleteTask borra con predicado id+owner. ErrNotFound si no borró
	// exactamente una fila.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// Repository es la superficie completa que consume la app.
type Repository interface {
	UserRepository
	TaskRepository

	Ping(ctx context.Context) error
	Close()
}
