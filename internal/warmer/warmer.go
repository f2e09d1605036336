package warmer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/repositories/album"
	"github.com/orgball2608/album-cover-service/pkg/config"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Cover     cover.Client
	AlbumRepo album.Repository
	Logger    logger.Logger
	Config    *config.Config
}

// Warmer keeps a periodically refreshed cache of root-album covers for the
// anonymous public view. Resolution stays read-only; the cache is only a
// snapshot of one batch call.
type Warmer struct {
	Cover     cover.Client
	AlbumRepo album.Repository
	Logger    logger.Logger
	Interval  time.Duration

	mu    sync.RWMutex
	cache map[string]*domain.Thumb
}

func New(opts Opts) *Warmer {
	return &Warmer{
		Cover:     opts.Cover,
		AlbumRepo: opts.AlbumRepo,
		Logger:    opts.Logger.WithComponent("CoverWarmer"),
		Interval:  time.Duration(opts.Config.Cover.WarmMinutes) * time.Minute,
		cache:     make(map[string]*domain.Thumb),
	}
}

// Lookup returns the cached cover for a root album. Only valid for the
// anonymous, NSFW-excluded, default-sorted view; any other request must go
// through the resolver.
func (w *Warmer) Lookup(albumID string) (*domain.Thumb, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	thumb, ok := w.cache[albumID]
	return thumb, ok
}

// Refresh resolves covers for all root albums as the anonymous viewer and
// swaps the cache wholesale.
func (w *Warmer) Refresh(ctx context.Context) error {
	roots, err := w.AlbumRepo.ListRoots(ctx)
	if err != nil {
		return fmt.Errorf("list root albums: %w", err)
	}

	thumbs, err := w.Cover.ResolveMany(ctx, roots, cover.NewRequest(access.Anonymous(), false))
	if err != nil {
		return fmt.Errorf("resolve root covers: %w", err)
	}

	w.mu.Lock()
	w.cache = thumbs
	w.mu.Unlock()

	w.Logger.Info("Warmed root album covers", "albums", len(thumbs))
	return nil
}

// Schedule sets up the periodic refresh job and runs one refresh up front so
// the cache is usable as soon as the service is.
func (w *Warmer) Schedule(ctx context.Context) error {
	if err := w.Refresh(ctx); err != nil {
		w.Logger.Warn("Initial cover warm failed", "error", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create warm scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.Interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				w.Logger.Info("Context cancelled, stopping cover warm job")
				return
			}

			refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			if err := w.Refresh(refreshCtx); err != nil {
				w.Logger.Error("Failed to warm root album covers", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cover warming: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		w.Logger.Info("Stopping cover warm scheduler")
		if err := scheduler.Shutdown(); err != nil {
			w.Logger.Error("Failed to shut down warm scheduler", "error", err)
		}
	}()

	return nil
}
