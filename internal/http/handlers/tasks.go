package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/http/helpers"
	"github.com/dropDatabas3/taskjohn/internal/http/middlewares"
	"github.com/dropDatabas3/taskjohn/internal/metrics"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// taskID parsea el path param. Un id malformado no puede existir, así que
// responde el mismo not_found que un id ajeno o inexistente.
func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helpers.WriteError(w, http.StatusNotFound, "not_found", "")
		return uuid.Nil, false
	}
	return id, true
}

// NewTasksListHandler: GET /v1/tasks?status=&search=
func NewTasksListHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())

		var f core.TaskFilter
		if s := strings.TrimSpace(r.URL.Query().Get("status")); s != "" {
			st := core.TaskStatus(s)
			if !st.Valid() {
				helpers.WriteError(w, http.StatusBadRequest, "invalid_status", "")
				return
			}
			f.Status = &st
		}
		f.Search = strings.TrimSpace(r.URL.Query().Get("search"))

		out, err := c.Tasks.List(r.Context(), u.ID, f)
		if err != nil {
			metrics.TaskOpsTotal.WithLabelValues("list", "error").Inc()
			helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}
		metrics.TaskOpsTotal.WithLabelValues("list", "ok").Inc()
		helpers.WriteJSON(w, http.StatusOK, out)
	}
}

// NewTasksCreateHandler: POST /v1/tasks
func NewTasksCreateHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())

		var req CreateTaskRequest
		if !helpers.ReadJSON(w, r, &req) {
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		if req.Title == "" {
			helpers.WriteError(w, http.StatusBadRequest, "missing_title", "")
			return
		}

		t, err := c.Tasks.Create(r.Context(), u.ID, req.Title, req.Description)
		if err != nil {
			metrics.TaskOpsTotal.WithLabelValues("create", "error").Inc()
			helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
			return
		}
		metrics.TaskOpsTotal.WithLabelValues("create", "ok").Inc()
		helpers.WriteJSON(w, http.StatusCreated, t)
	}
}

// NewTasksGetHandler: GET /v1/tasks/{id}
func NewTasksGetHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		t, err := c.Tasks.Get(r.Context(), u.ID, id)
		if err != nil {
			writeTaskError(w, "get", err)
			return
		}
		metrics.TaskOpsTotal.WithLabelValues("get", "ok").Inc()
		helpers.WriteJSON(w, http.StatusOK, t)
	}
}

// NewTasksDeleteHandler: DELETE /v1/tasks/{id}
func NewTasksDeleteHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		if err := c.Tasks.Delete(r.Context(), u.ID, id); err != nil {
			writeTaskError(w, "delete", err)
			return
		}
		metrics.TaskOpsTotal.WithLabelValues("delete", "ok").Inc()
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewTasksUpdateStatusHandler: PATCH /v1/tasks/{id}/status
func NewTasksUpdateStatusHandler(c *app.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := middlewares.GetUser(r.Context())
		id, ok := taskID(w, r)
		if !ok {
			return
		}

		var req UpdateTaskStatusRequest
		if !helpers.ReadJSON(w, r, &req) {
			return
		}
		st := core.TaskStatus(strings.TrimSpace(req.Status))
		if !st.Valid() {
			helpers.WriteError(w, http.StatusBadRequest, "invalid_status", "")
			return
		}

		t, err := c.Tasks.UpdateStatus(r.Context(), u.ID, id, st)
		if err != nil {
			writeTaskError(w, "update_status", err)
			return
		}
		metrics.TaskOpsTotal.WithLabelValues("update_status", "ok").Inc()
		helpers.WriteJSON(w, http.StatusOK, t)
	}
}

// writeTaskError mapea la taxonomía del servicio al API. NotFound es el mismo
// para id inexistente y para tarea de otro usuario.
func writeTaskError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		metrics.TaskOpsTotal.WithLabelValues(op, "not_found").Inc()
		helpers.WriteError(w, http.StatusNotFound, "not_found", "")
	case errors.Is(err, core.ErrInvalid):
		metrics.TaskOpsTotal.WithLabelValues(op, "invalid").Inc()
		helpers.WriteError(w, http.StatusBadRequest, "invalid_status", "")
	default:
		metrics.TaskOpsTotal.WithLabelValues(op, "error").Inc()
		helpers.WriteError(w, http.StatusInternalServerError, "internal_error", "")
	}
}
