package helpers_test

import (
	"testing"

	"github.com/alumlink/alumlink/internal/pkg/helpers"
)

func TestNormalizePageLimit(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid", 3, 25, 3, 25},
		{"zero page", 0, 10, 1, 10},
		{"negative page", -5, 10, 1, 10},
		{"zero limit", 2, 0, 2, 10},
		{"both invalid", 0, -1, 1, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := helpers.NormalizePageLimit(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Errorf("NormalizePageLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := helpers.NewPagination(25, 3, 10)
	if p.Current != 3 {
		t.Errorf("Current = %d, want 3", p.Current)
	}
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if p.Total != 25 {
		t.Errorf("Total = %d, want 25", p.Total)
	}
}

func TestNewPagination_CurrentNotClamped(t *testing.T) {
	// Paging past the end echoes the requested page untouched.
	p := helpers.NewPagination(5, 99, 10)
	if p.Current != 99 {
		t.Errorf("Current = %d, want 99", p.Current)
	}
	if p.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", p.TotalPages)
	}
}

func TestNewPagination_EmptyCollection(t *testing.T) {
	p := helpers.NewPagination(0, 1, 10)
	if p.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantStart int
		wantEnd   int
	}{
		{"first page", 25, 1, 10, 0, 10},
		{"last partial page", 25, 3, 10, 20, 25},
		{"past the end", 5, 99, 10, 5, 5},
		{"defaults applied", 25, 0, 0, 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := helpers.PageBounds(tc.total, tc.page, tc.limit)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("PageBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.total, tc.page, tc.limit, start, end, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
