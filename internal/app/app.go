package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/cover/coverimpl"
	_ "github.com/orgball2608/album-cover-service/internal/migrations"
	"github.com/orgball2608/album-cover-service/internal/ratelimit"
	repositories "github.com/orgball2608/album-cover-service/internal/repositories/fx"
	"github.com/orgball2608/album-cover-service/internal/server"
	"github.com/orgball2608/album-cover-service/internal/warmer"
	"github.com/orgball2608/album-cover-service/pkg/config"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"github.com/orgball2608/album-cover-service/pkg/pgx"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			access.NewStandardPolicy,
			fx.As(new(access.Policy)),
		),
		fx.Annotate(
			coverimpl.New,
			fx.As(new(cover.Client)),
		),
		warmer.New,
		server.New,
		func(cfg *config.Config) ratelimit.Limiter {
			return ratelimit.NewInMemoryLimiter(
				1,
				time.Duration(cfg.RateLimit.PerSeconds)*time.Second,
				cfg.RateLimit.Burst,
			)
		},
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(run),
)

// migrate runs the registered goose migrations before anything serves
// traffic.
func migrate(cfg *config.Config, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.Up(db, "internal/migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Migrations applied")
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, srv *server.Server, w *warmer.Warmer) {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: srv.Handler(),
	}

	appCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("Server failed to start", "error", err)
				}
			}()

			if err := w.Schedule(appCtx); err != nil {
				log.Error("Cover warming error", "error", err)
				return err
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return httpServer.Shutdown(ctx)
		},
	})
}
