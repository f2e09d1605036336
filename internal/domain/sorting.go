package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownSortColumn = errors.New("unknown sort column")

type SortColumn string

const (
	SortColumnCreatedAt SortColumn = "created_at"
	SortColumnTakenAt   SortColumn = "taken_at"
	SortColumnTitle     SortColumn = "title"
	SortColumnIsStarred SortColumn = "is_starred"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortingCriterion ranks candidate cover photos. The starred tie-break is
// applied before it and is not part of the criterion itself.
type SortingCriterion struct {
	Column    SortColumn
	Direction SortDirection
}

// DefaultSorting is the canonical criterion: newest photo first.
func DefaultSorting() SortingCriterion {
	return SortingCriterion{
		Column:    SortColumnCreatedAt,
		Direction: SortDesc,
	}
}

func (c SortingCriterion) Validate() error {
	switch c.Column {
	case SortColumnCreatedAt, SortColumnTakenAt, SortColumnTitle, SortColumnIsStarred:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSortColumn, c.Column)
	}
	switch c.Direction {
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("invalid sort direction %q", c.Direction)
	}
	return nil
}
