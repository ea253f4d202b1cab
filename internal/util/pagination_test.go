package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name              string
		page, size        int
		wantPage, wantOff int
		wantLimit         int
	}{
		{"defaults", 0, 0, 1, 0, DefaultPageSize},
		{"second page", 2, 10, 2, 10, 10},
		{"size clamped", 1, 1000, 1, 0, MaxPageSize},
		{"negative page", -4, 5, 1, 0, 5},
		{"huge page", 92233720368547759, 100, math.MaxInt / MaxPageSize, (math.MaxInt/MaxPageSize - 1) * MaxPageSize, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, off, lim := Calculate(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, p)
			assert.Equal(t, tc.wantOff, off)
			assert.Equal(t, tc.wantLimit, lim)
		})
	}
}

func TestWindow(t *testing.T) {
	lo, hi := Window(5, 0, 2)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 2, hi)

	lo, hi = Window(5, 4, 2)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 5, hi)

	lo, hi = Window(5, 10, 2)
	assert.Equal(t, 5, lo)
	assert.Equal(t, 5, hi)

	items := []int{1, 2, 3}
	_, off, lim := Calculate(92233720368547759, 100)
	lo, hi = Window(len(items), off, lim)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi)
	assert.Empty(t, items[lo:hi])
}

func TestMeta(t *testing.T) {
	m := Meta(2, 10, 10, 25)
	assert.Equal(t, int64(3), m["total_pages"])
	assert.Equal(t, true, m["has_prev"])
	assert.Equal(t, true, m["has_next"])

	m = Meta(3, 10, 20, 25)
	assert.Equal(t, false, m["has_next"])

	p, off, lim := Calculate(92233720368547759, 100)
	m = Meta(p, lim, off, 3)
	assert.Equal(t, false, m["has_next"])
	assert.Equal(t, true, m["has_prev"])
}
