package middlewares

import (
	"context"

	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUser
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, rid)
}

// GetRequestID retorna el request id inyectado por WithRequestID, o "".
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

// WithUser inyecta el usuario autenticado (sin hash) en el contexto.
func WithUser(ctx context.Context, u *core.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, u)
}

// GetUser retorna el usuario autenticado, o nil si el request no pasó por
// RequireAuth.
func GetUser(ctx context.Context) *core.User {
	v, _ := ctx.Value(ctxKeyUser).(*core.User)
	return v
}
