package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql, used by goose
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/docugallery/gallery-backend/internal/adapter/drive"
	"github.com/docugallery/gallery-backend/internal/adapter/postgres"
	projectrepo "github.com/docugallery/gallery-backend/internal/adapter/postgres/project"
	userrepo "github.com/docugallery/gallery-backend/internal/adapter/postgres/user"
	"github.com/docugallery/gallery-backend/internal/adapter/redisquota"
	"github.com/docugallery/gallery-backend/internal/auth"
	"github.com/docugallery/gallery-backend/internal/config"
	projectsvc "github.com/docugallery/gallery-backend/internal/service/project"
	usersvc "github.com/docugallery/gallery-backend/internal/service/user"
	"github.com/docugallery/gallery-backend/internal/thumbnail"
	"github.com/docugallery/gallery-backend/internal/transport/middleware"
	"github.com/docugallery/gallery-backend/internal/transport/rest"
	"github.com/docugallery/gallery-backend/migrations"
)

// Run is the application entry point. It loads configuration, wires every
// layer together, starts the HTTP server, and blocks until ctx is cancelled
// or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Redis is optional. Without it the app runs with no usage bookkeeping.
	var redisClient *redis.Client
	var quotaCounter *redisquota.Counter
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, quota counting will retry per call",
				slog.String("error", err.Error()))
		}
		cancel()

		quotaCounter = redisquota.NewCounter(redisClient, cfg.Drive.DailyLimit)
	}

	var lister thumbnail.Lister
	if cfg.Drive.APIKey != "" {
		driveClient := drive.NewClientWithURL(cfg.Drive.BaseURL, cfg.Drive.APIKey, logger)
		if quotaCounter != nil {
			lister = drive.NewCountingLister(logger, driveClient, quotaCounter)
		} else {
			lister = driveClient
		}
	} else {
		logger.Warn("drive api key not set, auto thumbnails will use the placeholder")
	}

	resolver := thumbnail.NewResolver(logger, lister, cfg.Drive.ListTimeout)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	projects := projectrepo.NewRepo(pool)
	users := userrepo.NewRepo(pool)

	projectService := projectsvc.NewService(logger, projects, resolver)
	userService := usersvc.NewService(logger, users, tokens)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	quotaHandler := rest.NewQuotaHandler(nil, logger)
	if quotaCounter != nil {
		quotaHandler = rest.NewQuotaHandler(quotaCounter, logger)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:   rest.NewHealthHandler(pool, redisPinger(redisClient), BuildVersion()),
		Auth:     rest.NewAuthHandler(userService, logger),
		Projects: rest.NewProjectHandler(projectService, logger),
		Users:    rest.NewUserHandler(userService, logger),
		Quota:    quotaHandler,

		AuthMW:      middleware.Auth(tokens, userService),
		CORS:        middleware.CORS(cfg.CORS),
		RateLimiter: rateLimiter,

		Log: logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// migrate applies the embedded goose migrations. goose requires *sql.DB,
// so a separate short-lived connection is opened next to the pgx pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

// redisPinger adapts the go-redis client to the health handler's interface.
// A nil client yields a nil pinger, which disables the redis health check.
func redisPinger(c *redis.Client) interface{ Ping(context.Context) error } {
	if c == nil {
		return nil
	}
	return pingAdapter{c}
}

type pingAdapter struct {
	c *redis.Client
}

func (a pingAdapter) Ping(ctx context.Context) error {
	return a.c.Ping(ctx).Err()
}
