package album

import (
	"context"
	"errors"

	"github.com/orgball2608/album-cover-service/internal/domain"
)

var ErrNotFound = errors.New("album not found")

//go:generate go run go.uber.org/mock/mockgen -source=album.go -destination=mocks/mock.go

type Repository interface {
	// GetByID loads one album with its pinned cover photo hydrated, when
	// one is set.
	GetByID(ctx context.Context, id string) (*domain.Album, error)

	// GetByIDs loads the given albums, cover photos hydrated, in input
	// order. Unknown IDs are skipped, not an error.
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Album, error)

	// ListRoots returns all top-level albums, cover photos hydrated.
	ListRoots(ctx context.Context) ([]*domain.Album, error)
}
