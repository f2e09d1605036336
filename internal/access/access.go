package access

import (
	"context"

	"github.com/orgball2608/album-cover-service/internal/domain"
)

// Viewer identifies who a resolution runs for. An empty ID is an anonymous
// viewer.
type Viewer struct {
	ID      string
	IsAdmin bool
}

func Anonymous() Viewer {
	return Viewer{}
}

// Scope is the visibility narrowing the storage layer applies to candidate
// photos. When All is set no narrowing happens at all (administrators).
type Scope struct {
	All         bool
	OwnerID     string
	IncludeNSFW bool
}

//go:generate go run go.uber.org/mock/mockgen -source=access.go -destination=mocks/mock.go

// Policy is the access-control collaborator. The resolver performs no
// authorization logic of its own beyond invoking it.
type Policy interface {
	// CanAccess gates the album itself. A false result makes resolution
	// short-circuit to an absent cover without any descendant query.
	CanAccess(ctx context.Context, viewer Viewer, album *domain.Album) (bool, error)

	// ScopeFor narrows descendant candidates for the given viewer.
	ScopeFor(viewer Viewer, includeNSFW bool) Scope
}

// StandardPolicy is the stock visibility policy: administrators see
// everything, owners see their own albums, everyone sees public ones.
type StandardPolicy struct{}

func NewStandardPolicy() *StandardPolicy {
	return &StandardPolicy{}
}

var _ Policy = (*StandardPolicy)(nil)

func (p *StandardPolicy) CanAccess(_ context.Context, viewer Viewer, album *domain.Album) (bool, error) {
	if viewer.IsAdmin {
		return true, nil
	}
	if album.OwnerID != "" && album.OwnerID == viewer.ID {
		return true, nil
	}
	return album.IsPublic, nil
}

func (p *StandardPolicy) ScopeFor(viewer Viewer, includeNSFW bool) Scope {
	return Scope{
		All:         viewer.IsAdmin,
		OwnerID:     viewer.ID,
		IncludeNSFW: includeNSFW || viewer.IsAdmin,
	}
}
