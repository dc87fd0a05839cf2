package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
)

// NewReadyzHandler: GET /readyz — ready solo si el storage responde.
func NewReadyzHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := c.Repo.Ping(ctx); err != nil {
			helpers.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
