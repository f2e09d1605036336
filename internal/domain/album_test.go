package domain

import (
	"errors"
	"testing"
)

func TestTreeRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		rng     TreeRange
		wantErr bool
	}{
		{name: "valid", rng: TreeRange{Lft: 1, Rgt: 10}, wantErr: false},
		{name: "adjacent bounds", rng: TreeRange{Lft: 4, Rgt: 5}, wantErr: false},
		{name: "equal bounds", rng: TreeRange{Lft: 3, Rgt: 3}, wantErr: true},
		{name: "inverted bounds", rng: TreeRange{Lft: 9, Rgt: 2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rng.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("expected ErrInvalidRange, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTreeRangeContains(t *testing.T) {
	parent := TreeRange{Lft: 1, Rgt: 10}

	tests := []struct {
		name  string
		other TreeRange
		want  bool
	}{
		{name: "itself", other: TreeRange{Lft: 1, Rgt: 10}, want: true},
		{name: "descendant", other: TreeRange{Lft: 2, Rgt: 5}, want: true},
		{name: "touching upper bound", other: TreeRange{Lft: 8, Rgt: 10}, want: true},
		{name: "outside", other: TreeRange{Lft: 11, Rgt: 14}, want: false},
		{name: "overlapping left", other: TreeRange{Lft: 0, Rgt: 4}, want: false},
		{name: "enclosing", other: TreeRange{Lft: 0, Rgt: 12}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parent.Contains(tt.other); got != tt.want {
				t.Fatalf("Contains(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestThumbFromPhoto(t *testing.T) {
	if ThumbFromPhoto(nil) != nil {
		t.Fatal("expected nil thumb for nil photo")
	}

	thumb := ThumbFromPhoto(&Photo{ID: "p1", Type: "image/jpeg", Title: "ignored"})
	if thumb.ID != "p1" || thumb.Type != "image/jpeg" {
		t.Fatalf("unexpected thumb: %+v", thumb)
	}
}

func TestSortingCriterionValidate(t *testing.T) {
	if err := DefaultSorting().Validate(); err != nil {
		t.Fatalf("default sorting must be valid: %v", err)
	}

	bad := SortingCriterion{Column: "owner_id; DROP TABLE photos", Direction: SortDesc}
	if err := bad.Validate(); !errors.Is(err, ErrUnknownSortColumn) {
		t.Fatalf("expected ErrUnknownSortColumn, got %v", err)
	}

	badDir := SortingCriterion{Column: SortColumnTakenAt, Direction: "SIDEWAYS"}
	if badDir.Validate() == nil {
		t.Fatal("expected error for invalid direction")
	}
}
