package app

import (
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/config"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/rate"
	"github.com/dropDatabas3/taskjohn/internal/store/core"
	"github.com/dropDatabas3/taskjohn/internal/tasks"
)

// Container agrupa las dependencias que consumen los handlers.
type Container struct {
	Cfg      *config.Config
	Repo     core.Repository
	Issuer   *jwtx.Issuer
	Auth     *auth.Service
	Tasks    *tasks.Service
	Identity *auth.Resolver

	// AuthLimiter es opcional; nil = sin rate limit en /v1/auth.
	AuthLimiter rate.Limiter
}
