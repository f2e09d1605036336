package photo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/album-cover-service/internal/access"
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
		logger: logger.WithComponent("PhotoRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

var photoColumns = []string{
	"p.id", "p.album_id", "p.title", "p.type", "p.is_starred",
	"p.taken_at", "p.created_at", "p.updated_at",
}

// sortColumns whitelists the rankable photo columns. Sorting input never
// reaches the SQL text directly.
var sortColumns = map[domain.SortColumn]string{
	domain.SortColumnCreatedAt: "created_at",
	domain.SortColumnTakenAt:   "taken_at",
	domain.SortColumnTitle:     "title",
	domain.SortColumnIsStarred: "is_starred",
}

// orderExpr renders the total order shared by the single and the grouped
// lookup: starred first, then the configured criterion, then the photo ID so
// equal rows rank deterministically.
func orderExpr(sorting domain.SortingCriterion) (string, error) {
	if err := sorting.Validate(); err != nil {
		return "", err
	}
	col, ok := sortColumns[sorting.Column]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSortColumn, sorting.Column)
	}
	return fmt.Sprintf("p.is_starred DESC, p.%s %s, p.id DESC", col, sorting.Direction), nil
}

// nsfwSubtreeCond excludes photos whose album sits anywhere under an
// NSFW-flagged album, the flagged album itself included. Ancestry is bounds
// containment, so nesting depth does not matter.
var nsfwSubtreeCond = sq.Expr(
	"NOT EXISTS (SELECT 1 FROM albums n WHERE n.is_nsfw = true AND n._lft <= a._lft AND n._rgt >= a._rgt)",
)

// scopeConds translates a visibility scope into album-level predicates. An
// admin scope adds none.
func scopeConds(scope access.Scope) []sq.Sqlizer {
	if scope.All {
		return nil
	}

	var conds []sq.Sqlizer
	if scope.OwnerID != "" {
		conds = append(conds, sq.Or{
			sq.Eq{"a.is_public": true},
			sq.Eq{"a.owner_id": scope.OwnerID},
		})
	} else {
		conds = append(conds, sq.Eq{"a.is_public": true})
	}
	if !scope.IncludeNSFW {
		conds = append(conds, nsfwSubtreeCond)
	}
	return conds
}

func buildBestInRange(rng domain.TreeRange, scope access.Scope, sorting domain.SortingCriterion) (string, []interface{}, error) {
	order, err := orderExpr(sorting)
	if err != nil {
		return "", nil, err
	}

	builder := repositories.SqBuilder.
		Select(photoColumns...).
		From("photos p").
		Join("albums a ON a.id = p.album_id").
		Where(sq.GtOrEq{"a._lft": rng.Lft}).
		Where(sq.LtOrEq{"a._rgt": rng.Rgt})
	for _, cond := range scopeConds(scope) {
		builder = builder.Where(cond)
	}

	return builder.
		OrderBy(order).
		Limit(1).
		ToSql()
}

// buildBestPerRange is the one-statement grouped lookup: the requested
// ranges go in as an inline VALUES table, every candidate photo is ranked
// inside its group by a window, and only the rank-1 row per group survives.
func buildBestPerRange(groups []Group, scope access.Scope, sorting domain.SortingCriterion) (string, []interface{}, error) {
	order, err := orderExpr(sorting)
	if err != nil {
		return "", nil, err
	}

	rows := make([]string, 0, len(groups))
	args := make([]interface{}, 0, len(groups)*3)
	for _, g := range groups {
		rows = append(rows, "(?, ?::bigint, ?::bigint)")
		args = append(args, g.AlbumID, g.Range.Lft, g.Range.Rgt)
	}
	valuesClause := fmt.Sprintf(
		"JOIN (VALUES %s) AS g(album_id, lft, rgt) ON a._lft >= g.lft AND a._rgt <= g.rgt",
		strings.Join(rows, ", "),
	)

	inner := repositories.SqBuilder.
		Select("g.album_id AS group_id").
		Columns(photoColumns...).
		Column(fmt.Sprintf("ROW_NUMBER() OVER (PARTITION BY g.album_id ORDER BY %s) AS rn", order)).
		From("albums a").
		JoinClause(sq.Expr(valuesClause, args...)).
		Join("photos p ON p.album_id = a.id")
	for _, cond := range scopeConds(scope) {
		inner = inner.Where(cond)
	}

	return repositories.SqBuilder.
		Select(
			"group_id", "id", "album_id", "title", "type", "is_starred",
			"taken_at", "created_at", "updated_at",
		).
		FromSelect(inner, "ranked").
		Where(sq.Eq{"rn": 1}).
		ToSql()
}

func (r *PgxRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Photo, error) {
	if len(ids) == 0 {
		return map[string]*domain.Photo{}, nil
	}

	query, args, err := repositories.SqBuilder.
		Select(photoColumns...).
		From("photos p").
		Where(sq.Eq{"p.id": ids}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos by ids: %w", err)
	}
	defer rows.Close()

	photos := make(map[string]*domain.Photo, len(ids))
	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(
			&p.ID, &p.AlbumID, &p.Title, &p.Type, &p.IsStarred,
			&p.TakenAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		photos[p.ID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return photos, nil
}

func (r *PgxRepository) FindBestInRange(ctx context.Context, rng domain.TreeRange, scope access.Scope, sorting domain.SortingCriterion) (*domain.Photo, error) {
	query, args, err := buildBestInRange(rng, scope, sorting)
	if err != nil {
		return nil, err
	}

	var p domain.Photo
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.AlbumID, &p.Title, &p.Type, &p.IsStarred,
		&p.TakenAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find best photo in range: %w", err)
	}

	return &p, nil
}

func (r *PgxRepository) FindBestPerRange(ctx context.Context, groups []Group, scope access.Scope, sorting domain.SortingCriterion) (map[string]*domain.Photo, error) {
	if len(groups) == 0 {
		return map[string]*domain.Photo{}, nil
	}

	query, args, err := buildBestPerRange(groups, scope, sorting)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query best photo per range: %w", err)
	}
	defer rows.Close()

	winners := make(map[string]*domain.Photo, len(groups))
	for rows.Next() {
		var (
			groupID string
			p       domain.Photo
		)
		if err := rows.Scan(
			&groupID, &p.ID, &p.AlbumID, &p.Title, &p.Type, &p.IsStarred,
			&p.TakenAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ranked photo row: %w", err)
		}
		winners[groupID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranked photo rows: %w", err)
	}

	return winners, nil
}
