package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	mock_cover "github.com/orgball2608/album-cover-service/internal/cover/mocks"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/ratelimit"
	"github.com/orgball2608/album-cover-service/internal/repositories/album"
	mock_album "github.com/orgball2608/album-cover-service/internal/repositories/album/mocks"
	"github.com/orgball2608/album-cover-service/internal/warmer"
	"github.com/orgball2608/album-cover-service/pkg/config"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	srv    *Server
	cover  *mock_cover.MockClient
	albums *mock_album.MockRepository
	warmer *warmer.Warmer
}

func newFixture(t *testing.T, burst int) *fixture {
	ctrl := gomock.NewController(t)
	coverClient := mock_cover.NewMockClient(ctrl)
	albumRepo := mock_album.NewMockRepository(ctrl)
	log := logger.New(logger.Opts{})

	cfg := &config.Config{}
	cfg.Cover.SortColumn = "created_at"
	cfg.Cover.SortOrder = "DESC"
	cfg.Cover.WarmMinutes = 15

	w := warmer.New(warmer.Opts{
		Cover:     coverClient,
		AlbumRepo: albumRepo,
		Logger:    log,
		Config:    cfg,
	})

	srv := New(Opts{
		Cover:     coverClient,
		AlbumRepo: albumRepo,
		Warmer:    w,
		Limiter:   ratelimit.NewInMemoryLimiter(1, time.Second, burst),
		Logger:    log,
		Config:    cfg,
	})

	return &fixture{srv: srv, cover: coverClient, albums: albumRepo, warmer: w}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, 100)

	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestGetAlbumCover(t *testing.T) {
	f := newFixture(t, 100)

	a := &domain.Album{ID: "a1", Range: domain.TreeRange{Lft: 1, Rgt: 10}}
	f.albums.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
	f.cover.EXPECT().
		ResolveOne(gomock.Any(), a, cover.Request{
			Viewer:  access.Viewer{ID: "u1"},
			Sorting: domain.DefaultSorting(),
		}).
		Return(&domain.Thumb{ID: "p1", Type: "image/jpeg"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/albums/a1/cover", nil)
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp coverResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.AlbumID != "a1" || resp.Thumb == nil || resp.Thumb.ID != "p1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetAlbumCoverAbsentIsNull(t *testing.T) {
	f := newFixture(t, 100)

	a := &domain.Album{ID: "a1", Range: domain.TreeRange{Lft: 4, Rgt: 5}}
	f.albums.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
	f.cover.EXPECT().ResolveOne(gomock.Any(), a, gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/albums/a1/cover", nil)
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("absence must not be an error status, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"thumb":null`) {
		t.Fatalf("expected null thumb, got %s", rec.Body.String())
	}
}

func TestGetAlbumCoverNotFound(t *testing.T) {
	f := newFixture(t, 100)

	f.albums.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, album.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/albums/nope/cover", nil)
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetAlbumCoverServesWarmedCache(t *testing.T) {
	f := newFixture(t, 100)

	roots := []*domain.Album{{ID: "a1", Range: domain.TreeRange{Lft: 1, Rgt: 10}}}
	f.albums.EXPECT().ListRoots(gomock.Any()).Return(roots, nil)
	f.cover.EXPECT().
		ResolveMany(gomock.Any(), roots, gomock.Any()).
		Return(map[string]*domain.Thumb{"a1": {ID: "p1", Type: "image/jpeg"}}, nil)

	if err := f.warmer.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	// Anonymous default view: answered from the cache, no further mock
	// expectations.
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/albums/a1/cover", nil))

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":"p1"`) {
		t.Fatalf("unexpected cached response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestBatchCovers(t *testing.T) {
	f := newFixture(t, 100)

	albums := []*domain.Album{
		{ID: "a1", Range: domain.TreeRange{Lft: 1, Rgt: 10}},
		{ID: "b1", Range: domain.TreeRange{Lft: 11, Rgt: 20}},
	}
	f.albums.EXPECT().GetByIDs(gomock.Any(), []string{"a1", "b1"}).Return(albums, nil)
	f.cover.EXPECT().
		ResolveMany(gomock.Any(), albums, cover.Request{
			Viewer:      access.Viewer{ID: "u1"},
			IncludeNSFW: true,
			Sorting:     domain.SortingCriterion{Column: domain.SortColumnTakenAt, Direction: domain.SortAsc},
		}).
		Return(map[string]*domain.Thumb{
			"a1": {ID: "p1", Type: "image/jpeg"},
			"b1": nil,
		}, nil)

	body := `{"album_ids":["a1","b1"],"include_nsfw":true,"sort_column":"taken_at","sort_order":"asc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/covers", strings.NewReader(body))
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp batchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Covers["a1"] == nil || resp.Covers["a1"].ID != "p1" {
		t.Errorf("unexpected cover for a1: %+v", resp.Covers["a1"])
	}
	if thumb, present := resp.Covers["b1"]; !present || thumb != nil {
		t.Errorf("expected explicit null for b1, got %+v present=%v", thumb, present)
	}
}

func TestBatchCoversRejectsBadSorting(t *testing.T) {
	f := newFixture(t, 100)

	body := `{"album_ids":["a1"],"sort_column":"owner_id"}`
	req := httptest.NewRequest(http.MethodPost, "/api/covers", strings.NewReader(body))
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestBatchCoversRequiresAlbumIDs(t *testing.T) {
	f := newFixture(t, 100)

	req := httptest.NewRequest(http.MethodPost, "/api/covers", strings.NewReader(`{}`))
	req.Header.Set("X-Viewer-ID", "u1")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	f := newFixture(t, 1)

	a := &domain.Album{ID: "a1", Range: domain.TreeRange{Lft: 1, Rgt: 10}}
	f.albums.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
	f.cover.EXPECT().ResolveOne(gomock.Any(), a, gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/albums/a1/cover", nil)
	req.Header.Set("X-Viewer-ID", "u1")

	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", rec.Code)
	}
}
