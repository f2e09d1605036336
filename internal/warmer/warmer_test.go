package warmer

import (
	"context"
	"testing"

	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	mock_cover "github.com/orgball2608/album-cover-service/internal/cover/mocks"
	"github.com/orgball2608/album-cover-service/internal/domain"
	mock_album "github.com/orgball2608/album-cover-service/internal/repositories/album/mocks"
	"github.com/orgball2608/album-cover-service/pkg/config"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"go.uber.org/mock/gomock"
)

func TestRefreshPrimesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	coverClient := mock_cover.NewMockClient(ctrl)
	albumRepo := mock_album.NewMockRepository(ctrl)

	roots := []*domain.Album{
		{ID: "a1", Range: domain.TreeRange{Lft: 1, Rgt: 10}},
		{ID: "a2", Range: domain.TreeRange{Lft: 11, Rgt: 12}},
	}

	albumRepo.EXPECT().ListRoots(gomock.Any()).Return(roots, nil)
	coverClient.EXPECT().
		ResolveMany(gomock.Any(), roots, cover.NewRequest(access.Anonymous(), false)).
		Return(map[string]*domain.Thumb{
			"a1": {ID: "p1", Type: "image/jpeg"},
			"a2": nil,
		}, nil)

	cfg := &config.Config{}
	cfg.Cover.WarmMinutes = 15

	w := New(Opts{
		Cover:     coverClient,
		AlbumRepo: albumRepo,
		Logger:    logger.New(logger.Opts{}),
		Config:    cfg,
	})

	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	thumb, ok := w.Lookup("a1")
	if !ok || thumb == nil || thumb.ID != "p1" {
		t.Fatalf("expected cached thumb for a1, got %+v ok=%v", thumb, ok)
	}

	// An album with no cover is cached as absent, not a miss.
	thumb, ok = w.Lookup("a2")
	if !ok || thumb != nil {
		t.Fatalf("expected cached absence for a2, got %+v ok=%v", thumb, ok)
	}

	if _, ok := w.Lookup("a3"); ok {
		t.Fatal("unknown album must be a cache miss")
	}
}
