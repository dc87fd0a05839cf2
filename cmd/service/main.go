package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	rdb "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/taskjohn/internal/app"
	"github.com/dropDatabas3/taskjohn/internal/auth"
	"github.com/dropDatabas3/taskjohn/internal/cache"
	"github.com/dropDatabas3/taskjohn/internal/config"
	httpx "github.com/dropDatabas3/taskjohn/internal/http"
	jwtx "github.com/dropDatabas3/taskjohn/internal/jwt"
	"github.com/dropDatabas3/taskjohn/internal/metrics"
	"github.com/dropDatabas3/taskjohn/internal/observability/logger"
	"github.com/dropDatabas3/taskjohn/internal/rate"
	"github.com/dropDatabas3/taskjohn/internal/store"
	"github.com/dropDatabas3/taskjohn/internal/tasks"
	"github.com/dropDatabas3/taskjohn/internal/util"
)

func main() {
	// .env si existe; si no, env del sistema.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "Path al YAML de configuración (opcional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// logger todavía no inicializado
		panic("config load: " + err.Error())
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "taskjohn",
	})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	if err := cfg.Validate(); err != nil {
		log.Fatal("config inválida", logger.Err(err))
	}
	if err := metrics.Register(nil); err != nil {
		log.Fatal("metrics register", logger.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("storage",
		logger.Component("store"),
		logger.Op(cfg.Storage.Driver),
		logger.DSN(util.MaskDSN(cfg.Storage.DSN)),
	)
	repo, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("store open", logger.Err(err))
	}
	defer repo.Close()

	cacheCfg := cache.Config{Kind: cfg.Cache.Kind, DefaultTTL: cfg.CacheTTL()}
	cacheCfg.Redis.Addr = cfg.Cache.Redis.Addr
	cacheCfg.Redis.Password = cfg.Cache.Redis.Password
	cacheCfg.Redis.DB = cfg.Cache.Redis.DB
	cacheCfg.Redis.Prefix = cfg.Cache.Redis.Prefix
	cacheClient, err := cache.New(cacheCfg)
	if err != nil {
		log.Fatal("cache open", logger.Err(err))
	}
	defer func() { _ = cacheClient.Close() }()

	issuer := jwtx.NewIssuer(cfg.JWT.Issuer, []byte(cfg.JWT.Secret))
	issuer.AccessTTL = cfg.AccessTTL()

	// Limiter de auth: con redis configurado la ventana es compartida entre
	// réplicas, si no queda in-process.
	var limiter rate.Limiter
	if cfg.RateLimit.Enabled {
		if cfg.Cache.Kind == "redis" && cfg.Cache.Redis.Addr != "" {
			limiter = rate.NewRedisLimiter(rdb.NewClient(&rdb.Options{
				Addr:     cfg.Cache.Redis.Addr,
				Password: cfg.Cache.Redis.Password,
				DB:       cfg.Cache.Redis.DB,
			}), "rl:auth:", cfg.RateLimit.Max, cfg.RateLimitWindow())
		} else {
			limiter = rate.NewMemoryLimiter(cfg.RateLimit.Max, cfg.RateLimitWindow())
		}
	}

	c := &app.Container{
		Cfg:         cfg,
		Repo:        repo,
		Issuer:      issuer,
		Auth:        auth.NewService(auth.Deps{Repo: repo, Issuer: issuer}),
		Tasks:       tasks.NewService(tasks.Deps{Repo: repo}),
		Identity:    auth.NewResolver(repo, cacheClient, cfg.CacheTTL()),
		AuthLimiter: limiter,
	}

	readTO, _ := time.ParseDuration(cfg.Server.ReadTimeout)
	writeTO, _ := time.ParseDuration(cfg.Server.WriteTimeout)
	srv := httpx.NewServer(cfg.Server.Addr, httpx.NewRouter(c), readTO, writeTO)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening",
			logger.Addr(cfg.Server.Addr),
			logger.Component("http"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("exit", logger.Err(err))
		os.Exit(1)
	}
}
