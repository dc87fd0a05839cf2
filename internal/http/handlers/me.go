package handlers

import (
	"net/http"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	"github.com/dropDatabas3/taskjohn/internal/http/middlewares"
)

// NewMeHandler: GET /v1/me — identidad del token, shape público.
func NewMeHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())
		helpers.WriteJSON(w, http.StatusOK, SignupResponse{
			ID:        u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}
}
