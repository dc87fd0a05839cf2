package auth_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/taskjohn/internal/auth"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/security/password"
	"github.com/dropDatabas3/taskjohn/internal/store/memory"
)

// Params livianos para no pagar argon2 de producción en cada test.
var testHashParams = password.Params{
	Memory:      8 * 1024,
	Time:        1,
	Parallelism: 1,
	SaltLen:     16,
	KeyLen:      32,
}

func newTestService(t *testing.T) (*auth.Service, *memory.Store) {
	t.Helper()
	repo := memory.New()
	iss := jwtx.NewIssuer("taskjohn-test", []byte("0123456789abcdef0123456789abcdef"))
	svc := auth.NewService(auth.Deps{Repo: repo, Issuer: iss, HashParams: testHashParams})
	return svc, repo
}

func TestSignUp_StoresHashNotPlaintext(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)

	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3rSecret", stored.PasswordHash)
	require.NotContains(t, stored.PasswordHash, "Sup3rSecret")
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "alice", "OtherPass1")
	require.ErrorIs(t, err, auth.ErrUsernameTaken)
}

func TestSignUp_ConcurrentDuplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SignUp(ctx, "bob", "Sup3rSecret")
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			require.ErrorIs(t, err, auth.ErrUsernameTaken)
		}
	}
	require.Equal(t, 1, okCount)
}

func TestSignIn_Success(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)

	token, exp, err := svc.SignIn(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	// El token debe verificar con el mismo emisor y nombrar al usuario.
	iss := jwtx.NewIssuer("taskjohn-test", []byte("0123456789abcdef0123456789abcdef"))
	claims, err := iss.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)
}

func TestSignIn_MergedFailureModes(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)

	// Usuario inexistente y password incorrecto producen el MISMO error,
	// indistinguibles para el caller.
	_, _, errUnknown := svc.SignIn(ctx, "ghost", "Sup3rSecret")
	_, _, errWrongPw := svc.SignIn(ctx, "alice", "WrongPass1")

	require.ErrorIs(t, errUnknown, auth.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, auth.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestSignIn_DoesNotMutateStore(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)
	before, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)

	_, _, _ = svc.SignIn(ctx, "alice", "WrongPass1")
	_, _, err = svc.SignIn(ctx, "alice", "Sup3rSecret")
	require.NoError(t, err)

	after, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, before.PasswordHash, after.PasswordHash)
	require.Equal(t, before.ID, after.ID)
}
