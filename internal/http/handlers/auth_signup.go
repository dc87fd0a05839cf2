package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	"github.com/dropDatabas3/taskjohn/internal/metrics"
	"github.com/dropDatabas3/taskjohn/internal/security/password"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResponse es el shape público del usuario creado. Nunca incluye hash.
type SignupResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthSignupHandler: POST /v1/auth/signup
func NewAuthSignupHandler(c *app.Container) http.HandlerFunc {
	policy := password.DefaultPolicy
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !helpers.ReadJSON(w, r, &req) {
			return
		}
		req.Username = strings.TrimSpace(req.Username)

		// Validación de borde; el gateway recibe campos ya validados.
		if ok, reasons := policy.ValidateUsername(req.Username); !ok {
			helpers.WriteError(w, http.StatusBadRequest, "invalid_username", strings.Join(reasons, ","))
			return
		}
		if ok, reasons := policy.ValidatePassword(req.Password); !ok {
			helpers.WriteError(w, http.StatusBadRequest, "invalid_password", strings.Join(reasons, ","))
			return
		}

		u, err := c.Auth.SignUp(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrUsernameTaken) {
				metrics.SignupsTotal.WithLabelValues("conflict").Inc()
				helpers.WriteError(w, http.StatusConflict, "username_taken", "username already exists")
				return
			}
			metrics.SignupsTotal.WithLabelValues("error").Inc()
			helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}

		metrics.SignupsTotal.WithLabelValues("ok").Inc()
		helpers.WriteJSON(w, http.StatusCreated, SignupResponse{
			ID:        u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}
}
