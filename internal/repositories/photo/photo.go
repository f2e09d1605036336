package photo

import (
	"context"
	"errors"

	"github.com/orgball2608/album-cover-service/internal/access"
	"github.com/orgball2608/album-cover-service/internal/domain"
)

var ErrNotFound = errors.New("photo not found")

// Group is one album's slot in a batched best-photo lookup. The range covers
// the album itself and every descendant, so recursion is already encoded.
type Group struct {
	AlbumID string
	Range   domain.TreeRange
}

//go:generate go run go.uber.org/mock/mockgen -source=photo.go -destination=mocks/mock.go

type Repository interface {
	// GetByIDs loads photos by primary key, keyed by ID. Unknown IDs are
	// simply missing from the result.
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Photo, error)

	// FindBestInRange returns the top-ranked photo whose album lies within
	// rng, under the given visibility scope. Starred photos always outrank
	// unstarred ones; sorting breaks ties after that. Returns ErrNotFound
	// when no photo qualifies.
	FindBestInRange(ctx context.Context, rng domain.TreeRange, scope access.Scope, sorting domain.SortingCriterion) (*domain.Photo, error)

	// FindBestPerRange computes the top-ranked photo for every group in one
	// pass over the candidate data, keyed by Group.AlbumID. Groups with no
	// qualifying photo are absent from the result. The cost is proportional
	// to the candidate photo set, not to the number of groups.
	FindBestPerRange(ctx context.Context, groups []Group, scope access.Scope, sorting domain.SortingCriterion) (map[string]*domain.Photo, error)
}
