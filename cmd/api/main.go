// Package main is the entrypoint for the BookingIn API server.
//
// @title                      BookingIn API
// @version                    1.0.0
// @description                Property booking backend: users, properties, rooms and reviews.
// @BasePath                   /api
// @securityDefinitions.apikey CookieAuth
// @in                         cookie
// @name                       access_token
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookingin/booking-api/internal/api"
	"github.com/bookingin/booking-api/internal/api/handler"
	"github.com/bookingin/booking-api/internal/api/middleware"
	"github.com/bookingin/booking-api/internal/core/ports"
	"github.com/bookingin/booking-api/internal/core/service"
	"github.com/bookingin/booking-api/internal/infrastructure/db/mongo"
	"github.com/bookingin/booking-api/internal/infrastructure/db/postgres"
	"github.com/bookingin/booking-api/internal/infrastructure/db/postgres/migrations"
	redisstore "github.com/bookingin/booking-api/internal/infrastructure/db/redis"
	"github.com/bookingin/booking-api/internal/infrastructure/http/handlers"
	"github.com/bookingin/booking-api/internal/pkg/config"
	"github.com/bookingin/booking-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "booking-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "booking-api",
		Env:     cfg.Env,
	})

	// --- Storage ---
	repos, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	readiness := map[string]handlers.Pinger{"database": repos.ping}

	// --- Logout denylist ---
	var (
		revoker     ports.TokenRevoker
		revocations middleware.RevocationChecker
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		denylist := redisstore.NewTokenDenylist(rdb)
		revoker, revocations = denylist, denylist
		readiness["redis"] = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	} else {
		log.Warn().Msg("REDIS_ADDR is empty, logout will not revoke tokens")
	}

	// --- Services ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(repos.users, tokens, revoker, logger.Component("auth"))
	userService := service.NewUserService(repos.users, logger.Component("users"))
	propertyService := service.NewPropertyService(repos.properties, logger.Component("properties"))
	roomService := service.NewRoomService(repos.properties, repos.rooms, logger.Component("rooms"))
	reviewService := service.NewReviewService(repos.properties, repos.reviews, logger.Component("reviews"))

	if cfg.Auth.AdminEmail != "" {
		if _, err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return fmt.Errorf("ensure admin: %w", err)
		}
	}

	e := api.NewRouter(api.Dependencies{
		Logger:      logger.Component("http"),
		CORSOrigins: cfg.CORSOrigins,
		Cookie:      handler.CookieOptions{Secure: cfg.Auth.CookieSecure, TTL: tokens.TTL()},
		Auth:        authService,
		Users:       userService,
		Properties:  propertyService,
		Rooms:       roomService,
		Reviews:     reviewService,
		Tokens:      tokens,
		Revocations: revocations,
		Readiness:   readiness,
	})

	// --- Serve until signalled ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Driver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

type store struct {
	users      ports.UserRepository
	properties ports.PropertyRepository
	rooms      ports.RoomRepository
	reviews    ports.ReviewRepository
	ping       handlers.Pinger
	close      func() error
}

// openStore connects the backend selected by STORAGE_DRIVER and brings its
// schema up to date.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

		return &store{
			users:      mongo.NewUserRepository(db),
			properties: mongo.NewPropertyRepository(db),
			rooms:      mongo.NewRoomRepository(db),
			reviews:    mongo.NewReviewRepository(db),
			ping:       handlers.PingFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) }),
			close: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return client.Disconnect(ctx)
			},
		}, nil

	default:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		applied, err := migrations.Migrate(ctx, sqlDB)
		if err != nil {
			_ = postgres.Close(db)
			return nil, err
		}
		log.Info().Ints64("migrations_applied", applied).Msg("connected to postgres")

		return &store{
			users:      postgres.NewUserRepository(db),
			properties: postgres.NewPropertyRepository(db),
			rooms:      postgres.NewRoomRepository(db),
			reviews:    postgres.NewReviewRepository(db),
			ping:       handlers.PingFunc(func(ctx context.Context) error { return postgres.Ping(ctx, db) }),
			close:      func() error { return postgres.Close(db) },
		}, nil
	}
}
