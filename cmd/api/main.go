package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/mini-linkedin/internal/api"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
	"github.com/baharkarakas/mini-linkedin/internal/config"
	"github.com/baharkarakas/mini-linkedin/internal/db"
	"github.com/baharkarakas/mini-linkedin/internal/imagerelay"
	"github.com/baharkarakas/mini-linkedin/internal/logger"
	"github.com/baharkarakas/mini-linkedin/internal/metrics"
	repo "github.com/baharkarakas/mini-linkedin/internal/repository"
	"github.com/baharkarakas/mini-linkedin/internal/repository/memory"
	"github.com/baharkarakas/mini-linkedin/internal/repository/postgres"
	"github.com/baharkarakas/mini-linkedin/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if cfg.IsProd() && cfg.JWTSecret == config.DefaultJWTSecret {
		return errors.New("JWT_SECRET must be set in prod")
	}

	store, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	s3c, err := imagerelay.NewS3Client(ctx, cfg.S3)
	if err != nil {
		return err
	}
	relay := imagerelay.NewS3Relay(s3c, cfg.S3, cfg.UploadMaxBytes)

	sessions := auth.NewSessionManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	authSvc := services.NewAuthService(store.Users, sessions, cfg.BcryptCost)
	feedSvc := services.NewFeedService(store.Users, store.Posts)
	profileSvc := services.NewProfileService(store.Users)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		Sessions:   sessions,
		AuthSvc:    authSvc,
		FeedSvc:    feedSvc,
		ProfileSvc: profileSvc,
		Relay:      relay,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.Store, error) {
	if cfg.StoreDriver == "memory" {
		log.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(), nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return repo.Store{}, err
	}
	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return repo.Store{}, err
		}
	}
	return postgres.NewStore(pool), nil
}
