package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	"github.com/dropDatabas3/taskjohn/internal/metrics"
)

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SigninResponse struct {
	AccessToken string `json:"accessToken"`
}

// NewAuthSigninHandler: POST /v1/auth/signin
//
// Usuario desconocido y password incorrecto responden exactamente igual
// (mismo status, mismo body): no filtrar existencia de usernames.
func NewAuthSigninHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SigninRequest
		if !helpers.ReadJSON(w, r, &req) {
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			helpers.WriteError(w, http.StatusBadRequest, "missing_fields", "")
			return
		}

		token, _, err := c.Auth.SignIn(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				metrics.SigninsTotal.WithLabelValues("unauthorized").Inc()
				helpers.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "")
				return
			}
			metrics.SigninsTotal.WithLabelValues("error").Inc()
			helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}

		metrics.SigninsTotal.WithLabelValues("ok").Inc()
		helpers.WriteJSON(w, http.StatusOK, SigninResponse{AccessToken: token})
	}
}
