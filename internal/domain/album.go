package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange signals a corrupted nested-set interval. It is a data
// fault, not an empty result, and must surface to the caller.
var ErrInvalidRange = errors.New("invalid tree range")

// TreeRange is an album's position in the nested-set tree. Containment of
// intervals encodes the ancestor/descendant relation, so descendants of an
// album can be selected without recursive traversal.
type TreeRange struct {
	Lft int64
	Rgt int64
}

func (r TreeRange) Validate() error {
	if r.Lft >= r.Rgt {
		return fmt.Errorf("%w: lft=%d rgt=%d", ErrInvalidRange, r.Lft, r.Rgt)
	}
	return nil
}

// Contains reports whether other lies within r, inclusively. An album
// contains itself.
func (r TreeRange) Contains(other TreeRange) bool {
	return r.Lft <= other.Lft && other.Rgt <= r.Rgt
}

type Album struct {
	ID       string
	Title    string
	ParentID *string
	OwnerID  string
	// CoverID is the explicitly pinned cover photo, if any. When it is set,
	// Cover may already carry the loaded photo.
	CoverID  *string
	Cover    *Photo
	IsPublic bool
	IsNSFW   bool
	Range    TreeRange

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasExplicitCover reports whether a cover photo was pinned on the album,
// in which case resolution never consults the tree.
func (a *Album) HasExplicitCover() bool {
	return a.CoverID != nil
}
