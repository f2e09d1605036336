package coverimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/album-cover-service/internal/cover"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/repositories/photo"
	"github.com/samber/lo"
)

func (c *CoverImpl) ResolveMany(ctx context.Context, albums []*domain.Album, req cover.Request) (map[string]*domain.Thumb, error) {
	result := make(map[string]*domain.Thumb, len(albums))
	if len(albums) == 0 {
		return result, nil
	}

	unique := lo.UniqBy(
		lo.Filter(albums, func(a *domain.Album, _ int) bool { return a != nil }),
		func(a *domain.Album) string { return a.ID },
	)

	explicit := lo.Filter(unique, func(a *domain.Album, _ int) bool { return a.HasExplicitCover() })
	implicit := lo.Filter(unique, func(a *domain.Album, _ int) bool { return !a.HasExplicitCover() })

	thumbs := make(map[string]*domain.Thumb, len(unique))

	if err := c.resolveExplicit(ctx, explicit, thumbs); err != nil {
		return nil, err
	}
	if err := c.resolveImplicit(ctx, implicit, req, thumbs); err != nil {
		return nil, err
	}

	// Every requested album gets an entry; duplicates in the input share
	// the one resolved value.
	for _, a := range albums {
		if a == nil {
			continue
		}
		result[a.ID] = thumbs[a.ID]
	}

	return result, nil
}

// resolveExplicit derives thumbs for pinned covers. Hydrated cover photos
// are used as-is; the rest are loaded in one primary-key lookup. The tree is
// never consulted here.
func (c *CoverImpl) resolveExplicit(ctx context.Context, albums []*domain.Album, thumbs map[string]*domain.Thumb) error {
	var pending []*domain.Album
	for _, a := range albums {
		if a.Cover != nil {
			thumbs[a.ID] = domain.ThumbFromPhoto(a.Cover)
			continue
		}
		pending = append(pending, a)
	}

	if len(pending) == 0 {
		return nil
	}

	ids := lo.Map(pending, func(a *domain.Album, _ int) string { return *a.CoverID })
	photos, err := c.PhotoRepo.GetByIDs(ctx, lo.Uniq(ids))
	if err != nil {
		return fmt.Errorf("load pinned covers: %w", err)
	}

	for _, a := range pending {
		p, ok := photos[*a.CoverID]
		if !ok {
			c.Logger.Warn("Pinned cover photo missing", "album_id", a.ID, "cover_id", *a.CoverID)
			continue
		}
		thumbs[a.ID] = domain.ThumbFromPhoto(p)
	}

	return nil
}

// resolveImplicit runs the grouped top-1 lookup for albums without a pinned
// cover. Inaccessible albums resolve to absent without joining the query;
// malformed ranges abort the whole batch.
func (c *CoverImpl) resolveImplicit(ctx context.Context, albums []*domain.Album, req cover.Request, thumbs map[string]*domain.Thumb) error {
	groups := make([]photo.Group, 0, len(albums))
	for _, a := range albums {
		if err := a.Range.Validate(); err != nil {
			return fmt.Errorf("album %s: %w", a.ID, err)
		}

		ok, err := c.Policy.CanAccess(ctx, req.Viewer, a)
		if err != nil {
			return fmt.Errorf("access check for album %s: %w", a.ID, err)
		}
		if !ok {
			continue
		}

		groups = append(groups, photo.Group{AlbumID: a.ID, Range: a.Range})
	}

	if len(groups) == 0 {
		return nil
	}

	scope := c.Policy.ScopeFor(req.Viewer, req.IncludeNSFW)
	winners, err := c.PhotoRepo.FindBestPerRange(ctx, groups, scope, req.Sorting)
	if err != nil {
		return fmt.Errorf("resolve covers for %d albums: %w", len(groups), err)
	}

	for albumID, p := range winners {
		thumbs[albumID] = domain.ThumbFromPhoto(p)
	}

	return nil
}
