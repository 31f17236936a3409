package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumlink/alumlink/internal/app/models/dto"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// NormalizePageLimit floors page and limit to their minimums. Zero, negative
// and unparseable values fall back to the defaults.
func NormalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// ParseListParams extracts page and limit query parameters from the request.
func ParseListParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = DefaultPage
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = DefaultLimit
	}
	return NormalizePageLimit(page, limit)
}

// NewPagination builds the pagination envelope for a list response. The
// requested page is echoed back even when it lies beyond the last page;
// callers paging past the end get an empty slice, not a clamped page number.
func NewPagination(total int, page, limit int) dto.Pagination {
	page, limit = NormalizePageLimit(page, limit)
	return dto.Pagination{
		Current:    page,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Total:      total,
	}
}

// PageBounds returns the half-open slice range [start, end) for a page of a
// collection with total items.
func PageBounds(total, page, limit int) (start, end int) {
	page, limit = NormalizePageLimit(page, limit)
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end
}
