package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mathquest/platform/internal/api"
	"github.com/mathquest/platform/internal/api/metrics"
	"github.com/mathquest/platform/internal/core/service"
	"github.com/mathquest/platform/internal/infrastructure/db/mysql"
	redisdb "github.com/mathquest/platform/internal/infrastructure/db/redis"
	"github.com/mathquest/platform/internal/pkg/config"
	"github.com/mathquest/platform/internal/pkg/token"
	"github.com/mathquest/platform/pkg/logger"
)

// @title MathQuest API
// @version 1.0
// @description Backend for the MathQuest learning platform: classrooms, lessons, activities, games and progress reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDev(),
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := mysql.Connect(cfg.MySQL.DSN(), cfg.IsDev())
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mysql")
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	seeded, err := service.SeedRoles(ctx, mysql.NewRoleRepository(db), log)
	if err != nil {
		log.Fatal().Err(err).Msg("seed roles")
	}
	for _, role := range seeded {
		metrics.RolesSeededTotal.WithLabelValues(role.String()).Inc()
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(db, rdb, codec, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
