// Package audit emite el rastro de eventos de autenticación. Hoy va al
// logger estructurado bajo el nombre "audit"; si hace falta un sink aparte
// (tabla, stream) se cambia acá sin tocar a los callers.
package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
)

const (
	EventSignup        = "auth.signup"
	EventSignupTaken   = "auth.signup.conflict"
	EventSignin        = "auth.signin"
	EventSigninDenied  = "auth.signin.denied"
	EventTokenRejected = "auth.token.rejected"
)

// Event registra un evento de auth con el username actuante. El username acá
// es el actor del evento, no una credencial.
func Event(ctx context.Context, event, username string) {
	logger.From(ctx).Named("audit").Info(event,
		zap.String("event", event),
		logger.Username(username),
	)
}
