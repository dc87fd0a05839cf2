// Package auth orquesta signup y signin contra el Credential Store y el
// emisor de tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dropDatabas3/taskjohn/internal/audit"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/security/password"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

var (
	// ErrUsernameTaken: el único error de signup visible para el usuario.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials cubre usuario inexistente Y password incorrecto.
	// Deliberado (anti-enumeración): no separar en errores más específicos.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Deps contiene las dependencias del gateway.
type Deps struct {
	Repo       core.UserRepository
	Issuer     *jwtx.Issuer
	HashParams password.Params // zero value = password.Default
}

type Service struct {
	deps Deps
}

func NewService(deps Deps) *Service {
	if deps.HashParams == (password.Params{}) {
		deps.HashParams = password.Default
	}
	return &Service{deps: deps}
}

// SignUp hashea el password (salt fresco por llamada) y persiste el usuario.
// La unicidad la decide el storage; acá solo se traduce la señal de conflicto.
func (s *Service) SignUp(ctx context.Context, username, plain string) (*core.User, error) {
	log := logger.From(ctx).With(logger.Component("auth"), logger.Op("SignUp"))

	phc, err := password.Hash(s.deps.HashParams, plain)
	if err != nil {
		log.Error("hash failed", logger.Err(err))
		return nil, fmt.Errorf("auth: hash: %w", err)
	}

	u, err := s.deps.Repo.CreateUser(ctx, username, phc)
	if err != nil {
		if errors.Is(err, core.ErrConflict) {
			audit.Event(ctx, audit.EventSignupTaken, username)
			return nil, ErrUsernameTaken
		}
		log.Error("create user failed", logger.Err(err))
		return nil, fmt.Errorf("auth: create user: %w", err)
	}

	audit.Event(ctx, audit.EventSignup, u.Username)
	log.Info("user created", logger.Username(u.Username), logger.UserID(u.ID.String()))
	return u, nil
}

// SignIn verifica credenciales y emite un token. Nunca muta estado.
func (s *Service) SignIn(ctx context.Context, username, plain string) (string, time.Time, error) {
	log := logger.From(ctx).With(logger.Component("auth"), logger.Op("SignIn"))

	u, err := s.deps.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			audit.Event(ctx, audit.EventSigninDenied, username)
			return "", time.Time{}, ErrInvalidCredentials
		}
		log.Error("lookup failed", logger.Err(err))
		return "", time.Time{}, fmt.Errorf("auth: lookup: %w", err)
	}

	if !password.Verify(plain, u.PasswordHash) {
		audit.Event(ctx, audit.EventSigninDenied, username)
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.deps.Issuer.Issue(u.Username)
	if err != nil {
		log.Error("issue failed", logger.Err(err))
		return "", time.Time{}, fmt.Errorf("auth: issue: %w", err)
	}
	audit.Event(ctx, audit.EventSignin, u.Username)
	return token, exp, nil
}
