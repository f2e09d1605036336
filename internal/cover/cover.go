package cover

import (
	"context"

	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/domain"
)

// Request carries the per-call context of one resolution: who is looking,
// whether NSFW albums count, and how candidates are ranked.
type Request struct {
	Viewer      access.Viewer
	IncludeNSFW bool
	Sorting     domain.SortingCriterion
}

// NewRequest builds a request with the canonical sorting.
func NewRequest(viewer access.Viewer, includeNSFW bool) Request {
	return Request{
		Viewer:      viewer,
		IncludeNSFW: includeNSFW,
		Sorting:     domain.DefaultSorting(),
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=cover.go -destination=mocks/mock.go

// Client resolves album covers. An absent cover is a nil Thumb with a nil
// error; errors are reserved for corrupted input and storage failures.
type Client interface {
	// ResolveOne resolves a single album's cover: the pinned photo when one
	// is set, otherwise the best-ranked visible photo among the album and
	// all of its descendants.
	ResolveOne(ctx context.Context, album *domain.Album, req Request) (*domain.Thumb, error)

	// ResolveMany resolves covers for a whole collection of albums in one
	// pass. The result maps every requested album ID to its Thumb, or to nil
	// when no cover exists. Albums without a pinned cover are resolved by a
	// single grouped query, never one query per album.
	ResolveMany(ctx context.Context, albums []*domain.Album, req Request) (map[string]*domain.Thumb, error)
}
