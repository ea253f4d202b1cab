package util

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate normalizes page and size and returns the offset into the result set.
func Calculate(page, size int) (p, offset, limit int) {
	if page < 1 {
		page = 1
	}
	page = min(page, math.MaxInt/MaxPageSize)
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, (page - 1) * size, size
}

// Window returns the [offset, offset+limit) bounds clamped to total.
func Window(total, offset, limit int) (lo, hi int) {
	lo = max(min(offset, total), 0)
	hi = lo + max(min(limit, total-lo), 0)
	return lo, hi
}

func Meta(page, limit, offset int, total int64) map[string]any {
	return map[string]any{
		"page":        page,
		"size":        limit,
		"total":       total,
		"total_pages": (total + int64(limit) - 1) / int64(limit),
		"has_prev":    page > 1,
		"has_next":    int64(offset) < total-int64(limit),
	}
}
