// Command api serves the ESAS tree species REST API.
//
// @title                       ESAS Tree Species API
// @version                     1.0
// @description                 Gardens, tree species, videos and points of interest behind JWT authentication.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/esas/tree-species-api/docs"
	"github.com/esas/tree-species-api/internal/api"
	"github.com/esas/tree-species-api/internal/api/handler"
	"github.com/esas/tree-species-api/internal/core/ports"
	"github.com/esas/tree-species-api/internal/core/service"
	"github.com/esas/tree-species-api/internal/infrastructure/db/mongo"
	"github.com/esas/tree-species-api/internal/infrastructure/db/redis"
	"github.com/esas/tree-species-api/internal/pkg/config"
	"github.com/esas/tree-species-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger level comes from config; fall back to a bare logger.
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "tree-species-api",
		Env:     cfg.Env,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	users := mongo.NewUserRepository(db)
	gardens := mongo.NewGardenRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}
	if err := gardens.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure garden indexes")
	}

	readiness := map[string]handler.Pinger{"mongodb": handler.MongoPinger(db), "redis": nil}
	cache := service.NopCache()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, list cache disabled")
	} else {
		defer func(c *goredis.Client) { _ = c.Close() }(rdb)
		cache = redis.NewListCache(rdb, cfg.Redis.CacheTTL)
		readiness["redis"] = handler.RedisPinger(rdb)
	}

	svc, err := buildServices(cfg, users, gardens, db, cache)
	if err != nil {
		log.Fatal().Err(err).Msg("build services")
	}

	e := api.NewRouter(svc, api.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Readiness:      readiness,
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

func buildServices(
	cfg *config.Config,
	users *mongo.UserRepository,
	gardens *mongo.GardenRepository,
	db *mongodriver.Database,
	cache ports.ListCache,
) (api.Services, error) {
	auth, err := service.NewAuthService(users, cfg.SecretKey)
	if err != nil {
		return api.Services{}, err
	}

	species := mongo.NewSpeciesRepository(db)
	return api.Services{
		Auth:    auth,
		Gardens: service.NewGardenService(gardens, species, cache, logger.Component("gardens")),
		Species: service.NewSpeciesService(species, cache, logger.Component("species")),
		Videos:  service.NewVideoService(mongo.NewVideoRepository(db), logger.Component("videos")),
		Points:  service.NewPointService(mongo.NewPointRepository(db), logger.Component("points")),
	}, nil
}
