package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/ratelimit"
	"github.com/orgball2608/album-cover-service/internal/repositories/album"
	"github.com/orgball2608/album-cover-service/internal/warmer"
	"github.com/orgball2608/album-cover-service/pkg/config"
	apperrors "github.com/orgball2608/album-cover-service/pkg/errors"
	"github.com/orgball2608/album-cover-service/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Cover     cover.Client
	AlbumRepo album.Repository
	Warmer    *warmer.Warmer
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
	Config    *config.Config
}

type Server struct {
	Cover     cover.Client
	AlbumRepo album.Repository
	Warmer    *warmer.Warmer
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *Server {
	return &Server{
		Cover:     opts.Cover,
		AlbumRepo: opts.AlbumRepo,
		Warmer:    opts.Warmer,
		Limiter:   opts.Limiter,
		Logger:    opts.Logger.WithComponent("HTTP"),
		Config:    opts.Config,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/albums/{id}/cover", s.handleAlbumCover)
	mux.HandleFunc("POST /api/covers", s.handleBatchCovers)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.Logger.Error("Failed to write response", "error", err)
	}
}

// viewerFromRequest reads the identity the gateway in front of us resolved.
// Authentication itself is not this service's concern.
func viewerFromRequest(r *http.Request) access.Viewer {
	return access.Viewer{
		ID:      r.Header.Get("X-Viewer-ID"),
		IsAdmin: r.Header.Get("X-Viewer-Admin") == "true",
	}
}

func (s *Server) defaultSorting() domain.SortingCriterion {
	sorting := domain.SortingCriterion{
		Column:    domain.SortColumn(s.Config.Cover.SortColumn),
		Direction: domain.SortDirection(strings.ToUpper(s.Config.Cover.SortOrder)),
	}
	if sorting.Validate() != nil {
		return domain.DefaultSorting()
	}
	return sorting
}

type coverResponse struct {
	AlbumID string        `json:"album_id"`
	Thumb   *domain.Thumb `json:"thumb"`
}

func (s *Server) handleAlbumCover(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFromRequest(r)
	if !s.Limiter.Allow(viewer.ID) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	albumID := r.PathValue("id")
	includeNSFW := r.URL.Query().Get("include_nsfw") == "true"

	// The warmed cache answers the default public view without touching the
	// database.
	if viewer == access.Anonymous() && !includeNSFW {
		if thumb, ok := s.Warmer.Lookup(albumID); ok {
			writeJSON(w, http.StatusOK, coverResponse{AlbumID: albumID, Thumb: thumb})
			return
		}
	}

	a, err := s.AlbumRepo.GetByID(r.Context(), albumID)
	if err != nil {
		if apperrors.Is(err, album.ErrNotFound) {
			writeError(w, http.StatusNotFound, "album not found")
			return
		}
		s.Logger.Error("Failed to load album", "album_id", albumID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	req := cover.Request{
		Viewer:      viewer,
		IncludeNSFW: includeNSFW,
		Sorting:     s.defaultSorting(),
	}
	thumb, err := s.Cover.ResolveOne(r.Context(), a, req)
	if err != nil {
		if apperrors.Is(err, domain.ErrInvalidRange) {
			s.Logger.Error("Corrupted album tree bounds", "album_id", albumID, "error", err)
			writeError(w, http.StatusInternalServerError, "corrupted album data")
			return
		}
		s.Logger.Error("Failed to resolve cover", "album_id", albumID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, coverResponse{AlbumID: albumID, Thumb: thumb})
}

type batchRequest struct {
	AlbumIDs    []string `json:"album_ids"`
	IncludeNSFW bool     `json:"include_nsfw"`
	SortColumn  string   `json:"sort_column"`
	SortOrder   string   `json:"sort_order"`
}

type batchResponse struct {
	Covers map[string]*domain.Thumb `json:"covers"`
}

func (s *Server) handleBatchCovers(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFromRequest(r)
	if !s.Limiter.Allow(viewer.ID) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	var body batchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.AlbumIDs) == 0 {
		writeError(w, http.StatusBadRequest, "album_ids is required")
		return
	}

	sorting := s.defaultSorting()
	if body.SortColumn != "" {
		sorting = domain.SortingCriterion{
			Column:    domain.SortColumn(body.SortColumn),
			Direction: domain.SortDirection(strings.ToUpper(body.SortOrder)),
		}
		if body.SortOrder == "" {
			sorting.Direction = domain.SortDesc
		}
		if err := sorting.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid sorting: %v", err))
			return
		}
	}

	albums, err := s.AlbumRepo.GetByIDs(r.Context(), body.AlbumIDs)
	if err != nil {
		s.Logger.Error("Failed to load albums", "count", len(body.AlbumIDs), "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	req := cover.Request{
		Viewer:      viewer,
		IncludeNSFW: body.IncludeNSFW,
		Sorting:     sorting,
	}
	covers, err := s.Cover.ResolveMany(r.Context(), albums, req)
	if err != nil {
		if apperrors.Is(err, domain.ErrInvalidRange) {
			s.Logger.Error("Corrupted album tree bounds in batch", "error", err)
			writeError(w, http.StatusInternalServerError, "corrupted album data")
			return
		}
		s.Logger.Error("Failed to resolve covers", "count", len(albums), "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// Unknown album IDs still get an entry so callers can zip the response
	// against their request.
	for _, id := range body.AlbumIDs {
		if _, ok := covers[id]; !ok {
			covers[id] = nil
		}
	}

	writeJSON(w, http.StatusOK, batchResponse{Covers: covers})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
