package album

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/album-cover-service/internal/domain"
	"github.com/orgball2608/album-cover-service/internal/repositories"
	"github.com/orgball2608/album-cover-service/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("AlbumRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

// albumColumns selects an album row together with its pinned cover photo.
// The join is on cover_id only, never the tree bounds.
func albumColumns() sq.SelectBuilder {
	return repositories.SqBuilder.
		Select(
			"a.id", "a.title", "a.parent_id", "a.owner_id", "a.cover_id",
			"a.is_public", "a.is_nsfw", "a._lft", "a._rgt",
			"a.created_at", "a.updated_at",
			"c.id", "c.album_id", "c.title", "c.type", "c.is_starred",
			"c.taken_at", "c.created_at", "c.updated_at",
		).
		From("albums a").
		LeftJoin("photos c ON c.id = a.cover_id")
}

func scanAlbum(row pgx.Row) (*domain.Album, error) {
	var (
		a domain.Album

		coverID        *string
		coverAlbumID   *string
		coverTitle     *string
		coverType      *string
		coverStarred   *bool
		coverTakenAt   *time.Time
		coverCreatedAt *time.Time
		coverUpdatedAt *time.Time
	)

	err := row.Scan(
		&a.ID, &a.Title, &a.ParentID, &a.OwnerID, &a.CoverID,
		&a.IsPublic, &a.IsNSFW, &a.Range.Lft, &a.Range.Rgt,
		&a.CreatedAt, &a.UpdatedAt,
		&coverID, &coverAlbumID, &coverTitle, &coverType, &coverStarred,
		&coverTakenAt, &coverCreatedAt, &coverUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if coverID != nil {
		a.Cover = &domain.Photo{
			ID:        *coverID,
			AlbumID:   *coverAlbumID,
			Title:     *coverTitle,
			Type:      *coverType,
			IsStarred: *coverStarred,
			TakenAt:   coverTakenAt,
			CreatedAt: *coverCreatedAt,
			UpdatedAt: *coverUpdatedAt,
		}
	}

	return &a, nil
}

func (r *PgxRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query, args, err := albumColumns().
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	album, err := scanAlbum(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album by id: %w", err)
	}

	return album, nil
}

func (r *PgxRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Album, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := albumColumns().
		Where(sq.Eq{"a.id": ids}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	albums, err := r.queryAlbums(ctx, query, args)
	if err != nil {
		return nil, err
	}

	// Preserve input order; the IN clause does not.
	byID := make(map[string]*domain.Album, len(albums))
	for _, a := range albums {
		byID[a.ID] = a
	}
	ordered := make([]*domain.Album, 0, len(albums))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			ordered = append(ordered, a)
			delete(byID, id)
		}
	}

	return ordered, nil
}

func (r *PgxRepository) ListRoots(ctx context.Context) ([]*domain.Album, error) {
	query, args, err := albumColumns().
		Where("a.parent_id IS NULL").
		OrderBy("a._lft ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return r.queryAlbums(ctx, query, args)
}

func (r *PgxRepository) queryAlbums(ctx context.Context, query string, args []interface{}) ([]*domain.Album, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []*domain.Album
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating album rows: %w", err)
	}

	return albums, nil
}
