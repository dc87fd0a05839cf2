package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dropDatabas3/taskjohn/internal/audit"
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

// RequireAuth valida Authorization: Bearer <JWT>, resuelve el username del
// claim sub a la fila de usuario y lo inyecta en el contexto. Cualquier falla
// (token ausente, firma inválida, usuario inexistente) es el mismo 401: el
// caller no distingue causas.
func RequireAuth(issuer *jwtx.Issuer, resolver *auth.Resolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := strings.TrimSpace(r.Header.Get("Authorization"))
			if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}
			raw := strings.TrimSpace(ah[len("Bearer "):])

			claims, err := issuer.Verify(raw)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="api", error="invalid_token"`)
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}

			u, err := resolver.Resolve(r.Context(), claims.Username)
			if err != nil {
				if !errors.Is(err, core.ErrNotFound) {
					logger.From(r.Context()).Error("identity resolve failed", logger.Err(err))
					helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
					return
				}
				// Token firmado para un usuario que no existe: mismo 401.
				audit.Event(r.Context(), audit.EventTokenRejected, claims.Username)
				helpers.WriteError(w, http.StatusUnauthorized, "unauthorized", "")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
