package core

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus es el set cerrado de estados de una tarea.
type TaskStatus string

const (
	StatusOpen       TaskStatus = "OPEN"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid reporta si s es uno de los estados conocidos.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskFilter restringe un listado. El owner NO viaja acá: el scoping por
// identidad es un parámetro obligatorio de cada operación, nunca un filtro
// opcional.
type TaskFilter struct {
	Status *TaskStatus
	Search string // substring case-insensitive sobre title O description
}
