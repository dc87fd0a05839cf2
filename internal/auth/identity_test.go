package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/cache"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

// countingRepo cuenta los hits al storage para observar el read-through.
type countingRepo struct {
	users map[string]*core.User
	gets  int
}

func (r *countingRepo) CreateUser(_ context.Context, username, hash string) (*core.User, error) {
	u := &core.User{ID: uuid.New(), Username: username, PasswordHash: hash, CreatedAt: time.Now()}
	r.users[username] = u
	return u, nil
}

func (r *countingRepo) GetUserByUsername(_ context.Context, username string) (*core.User, error) {
	r.gets++
	u, ok := r.users[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func TestResolve_ReadThrough(t *testing.T) {
	repo := &countingRepo{users: map[string]*core.User{}}
	_, err := repo.CreateUser(context.Background(), "alice", "phc")
	require.NoError(t, err)

	cc := cache.NewMemory(time.Minute)
	res := auth.NewResolver(repo, cc, time.Minute)
	ctx := context.Background()

	u1, err := res.Resolve(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", u1.Username)
	require.Empty(t, u1.PasswordHash)
	require.Equal(t, 1, repo.gets)

	// Segunda resolución sale del cache.
	u2, err := res.Resolve(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u1.ID, u2.ID)
	require.Equal(t, 1, repo.gets)
}

func TestResolve_UnknownUser(t *testing.T) {
	repo := &countingRepo{users: map[string]*core.User{}}
	res := auth.NewResolver(repo, cache.NewMemory(time.Minute), time.Minute)

	_, err := res.Resolve(context.Background(), "ghost")
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestResolve_NilCache(t *testing.T) {
	repo := &countingRepo{users: map[string]*core.User{}}
	_, err := repo.CreateUser(context.Background(), "alice", "phc")
	require.NoError(t, err)

	res := auth.NewResolver(repo, nil, 0)
	for i := 0; i < 3; i++ {
		_, err := res.Resolve(context.Background(), "alice")
		require.NoError(t, err)
	}
	require.Equal(t, 3, repo.gets)
}
