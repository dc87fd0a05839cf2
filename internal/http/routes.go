package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/http/handlers"
	"github.com/dropDatabas3/taskjohn/internal/http/middlewares"
)

// NewRouter arma el router completo del servicio.
func NewRouter(c *app.Container) stdhttp.Handler {
	r := chi.NewRouter()

	// Middlewares globales (orden: request id -> logging -> recover -> cors)
	r.Use(middlewares.WithRequestID())
	r.Use(middlewares.WithLogging())
	r.Use(middlewares.Recover())
	if len(c.Cfg.Server.CORSAllowedOrigins) > 0 {
		r.Use(middlewares.CORS(c.Cfg.Server.CORSAllowedOrigins))
	}

	// Health
	r.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", handlers.NewReadyzHandler(c))

	if c.Cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Auth pública. El rate limit solo aplica acá: es la superficie que
	// interesa a un brute-force de credenciales.
	r.Group(func(ar chi.Router) {
		if c.AuthLimiter != nil {
			ar.Use(middlewares.RateLimit(c.AuthLimiter))
		}
		ar.Post("/v1/auth/signup", handlers.NewAuthSignupHandler(c))
		ar.Post("/v1/auth/signin", handlers.NewAuthSigninHandler(c))
	})

	// Rutas autenticadas: toda operación de tareas corre con la identidad
	// resuelta del token en el contexto.
	r.Group(func(pr chi.Router) {
		pr.Use(middlewares.RequireAuth(c.Issuer, c.Identity))

		pr.Get("/v1/me", handlers.NewMeHandler(c))

		pr.Route("/v1/tasks", func(tr chi.Router) {
			tr.Get("/", handlers.NewTasksListHandler(c))
			tr.Post("/", handlers.NewTasksCreateHandler(c))
			tr.Get("/{id}", handlers.NewTasksGetHandler(c))
			tr.Delete("/{id}", handlers.NewTasksDeleteHandler(c))
			tr.Patch("/{id}/status", handlers.NewTasksUpdateStatusHandler(c))
		})
	})

	return r
}
