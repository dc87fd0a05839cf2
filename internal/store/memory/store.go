// Package memory implementa core.Repository en memoria.
// Útil para desarrollo y tests; la unicidad y el scoping por owner se
// garantizan bajo un único mutex, con la misma semántica que el driver pg.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

type Store struct {
	mu          sync.RWMutex
	usersByName map[string]core.User
	tasks       map[uuid.UUID]core.Task
}

func New() *Store {
	return &Store{
		usersByName: make(map[string]core.User),
		tasks:       make(map[uuid.UUID]core.Task),
	}
}

func (s *Store) Ping(ctx context.Context) error { return nil }
func (s *Store) Close()                         {}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*core.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Insert atómico bajo el lock: dos signups concurrentes con el mismo
	// username resuelven determinísticamente (uno gana, el otro Conflict).
	if _, ok := s.usersByName[username]; ok {
		return nil, core.ErrConflict
	}
	u := core.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.usersByName[username] = u
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.usersByName[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &u, nil
}

func (s *Store) CreateTask(ctx context.Context, ownerID uuid.UUID, title, description string) (*core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := core.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      core.StatusOpen,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}
	s.tasks[t.ID] = t
	return &t, nil
}

func (s *Store) ListTasks(ctx context.Context, ownerID uuid.UUID, f core.TaskFilter) ([]core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(f.Search)
	out := []core.Task{}
	for _, t := range s.tasks {
		// Ownership primero, después los predicados del filtro.
		if t.OwnerID != ownerID {
			continue
		}
		if f.Status != nil && t.Status != *f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*core.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		// Mismo error para "no existe" y "es de otro": no filtrar existencia.
		return nil, core.ErrNotFound
	}
	return &t, nil
}

func (s *Store) UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status core.TaskStatus) (*core.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return nil, core.ErrNotFound
	}
	t.Status = status
	s.tasks[taskID] = t
	return &t, nil
}

func (s *Store) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return core.ErrNotFound
	}
	delete(s.tasks, t.ID)
	return nil
}
