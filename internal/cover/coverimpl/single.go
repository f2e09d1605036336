package coverimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/repositories/photo"
)

func (c *CoverImpl) ResolveOne(ctx context.Context, album *domain.Album, req cover.Request) (*domain.Thumb, error) {
	if album == nil {
		return nil, nil
	}

	// A pinned cover wins unconditionally and never touches the tree.
	if album.HasExplicitCover() {
		return c.explicitThumb(ctx, album)
	}

	if err := album.Range.Validate(); err != nil {
		return nil, fmt.Errorf("album %s: %w", album.ID, err)
	}

	ok, err := c.Policy.CanAccess(ctx, req.Viewer, album)
	if err != nil {
		return nil, fmt.Errorf("access check for album %s: %w", album.ID, err)
	}
	if !ok {
		return nil, nil
	}

	scope := c.Policy.ScopeFor(req.Viewer, req.IncludeNSFW)
	best, err := c.PhotoRepo.FindBestInRange(ctx, album.Range, scope, req.Sorting)
	if err != nil {
		if errors.Is(err, photo.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve cover for album %s: %w", album.ID, err)
	}

	return domain.ThumbFromPhoto(best), nil
}

// explicitThumb derives the thumb of a pinned cover. The photo is normally
// already hydrated on the album; when it is not, it is fetched by primary
// key only.
func (c *CoverImpl) explicitThumb(ctx context.Context, album *domain.Album) (*domain.Thumb, error) {
	if album.Cover != nil {
		return domain.ThumbFromPhoto(album.Cover), nil
	}

	photos, err := c.PhotoRepo.GetByIDs(ctx, []string{*album.CoverID})
	if err != nil {
		return nil, fmt.Errorf("load pinned cover for album %s: %w", album.ID, err)
	}

	p, ok := photos[*album.CoverID]
	if !ok {
		// Pinned photo no longer exists; treat as no cover rather than
		// falling through to a tree query the caller did not ask for.
		c.Logger.Warn("Pinned cover photo missing", "album_id", album.ID, "cover_id", *album.CoverID)
		return nil, nil
	}

	return domain.ThumbFromPhoto(p), nil
}
