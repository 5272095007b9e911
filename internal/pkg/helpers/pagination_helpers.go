package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/baris/collegehub/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

// ParsePaginationParams extracts and validates page/limit from the request
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}

	return page, limit
}

// CalculateSkipLimit converts a 1-based page number into a query skip/limit pair
func CalculateSkipLimit(page, limit int) (skip int64, lim int64) {
	if limit < 1 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	return int64(page-1) * int64(limit), int64(limit)
}

// NewPaginationInfo builds the standard pagination metadata block
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     int64(page)*int64(limit) < total,
		HasPrev:     page > 1,
	}
}
