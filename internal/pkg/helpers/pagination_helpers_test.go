package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=3&limit=25", 3, 25},
		{"zero page falls back", "page=0&limit=5", 1, 5},
		{"negative page falls back", "page=-2", 1, 10},
		{"non-numeric page falls back", "page=abc&limit=5", 1, 5},
		{"limit above cap falls back", "page=2&limit=500", 2, 10},
		{"zero limit falls back", "limit=0", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			page, limit := ParsePaginationParams(c)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("ParsePaginationParams() = (%d, %d), want (%d, %d)",
					page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestCalculateSkipLimit(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		wantSkip int64
		wantLim  int64
	}{
		{"first page", 1, 10, 0, 10},
		{"second page", 2, 5, 5, 5},
		{"deep page", 7, 20, 120, 20},
		{"bad inputs fall back", 0, 0, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, lim := CalculateSkipLimit(tt.page, tt.limit)
			if skip != tt.wantSkip || lim != tt.wantLim {
				t.Errorf("CalculateSkipLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, skip, lim, tt.wantSkip, tt.wantLim)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page           int
		limit          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"middle page", 12, 2, 5, 3, true, true},
		{"first of many", 100, 1, 10, 10, true, false},
		{"last page", 12, 3, 5, 3, false, true},
		{"exact fit boundary", 10, 1, 10, 1, false, false},
		{"empty set", 0, 1, 10, 0, false, false},
		{"single record", 1, 1, 10, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.total, tt.page, tt.limit)

			if info.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.page)
			}
			if info.Total != tt.total {
				t.Errorf("Total = %d, want %d", info.Total, tt.total)
			}
			if info.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantTotalPages)
			}
			if info.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", info.HasNext, tt.wantHasNext)
			}
			if info.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", info.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
