package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name          string
		number, size  int
		wantN, wantSz int
		wantOff       int
	}{
		{"first page", 1, 5, 1, 5, 0},
		{"third page", 3, 10, 3, 10, 20},
		{"zero page", 0, 5, 1, 5, 0},
		{"negative page", -4, 5, 1, 5, 0},
		{"zero size", 2, 0, 2, 1, 1},
		{"negative size", 2, -10, 2, 1, 1},
		{"huge page saturates offset", 1<<61 + 1, 4, 1<<61 + 1, 4, math.MaxInt},
		{"max page", math.MaxInt, 1, math.MaxInt, 1, math.MaxInt - 1},
		{"huge size", 3, math.MaxInt, 3, math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size)
			assert.Equal(t, tt.wantN, p.Number)
			assert.Equal(t, tt.wantSz, p.Size)
			assert.Equal(t, tt.wantOff, p.Offset())
			assert.Equal(t, tt.wantSz, p.Limit())
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		size     int
		expected int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 10, 1},
		{11, 10, 2},
		{7, 1, 7},
		{math.MaxInt64, 1, math.MaxInt},
		{3, math.MaxInt, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}

// Items on a page never exceed the page size and match the remaining count.
func TestPageWindowSizes(t *testing.T) {
	for total := int64(0); total <= 23; total++ {
		for size := 1; size <= 7; size++ {
			pages := TotalPages(total, size)
			if total == 0 {
				assert.Equal(t, 0, pages)
			}
			for n := 1; n <= pages+1; n++ {
				p := NewPage(n, size)
				remaining := total - int64(p.Offset())
				want := int64(size)
				if remaining < want {
					want = remaining
				}
				if want < 0 {
					want = 0
				}
				got := windowLen(total, p)
				assert.LessOrEqual(t, got, int64(size))
				assert.Equal(t, want, got, "total=%d size=%d page=%d", total, size, n)
			}
		}
	}
}

func windowLen(total int64, p Page) int64 {
	start := int64(p.Offset())
	if start >= total {
		return 0
	}
	end := start + int64(p.Limit())
	if end > total {
		end = total
	}
	return end - start
}

func TestNewResult(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		res := NewResult[string](nil, 0, NewPage(1, 5))
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.TotalPages)
		assert.True(t, res.NoResults)
		assert.Equal(t, 1, res.CurrentPage)
	})

	t.Run("Partial last page", func(t *testing.T) {
		res := NewResult([]string{"a", "b"}, 12, NewPage(3, 5))
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, 3, res.CurrentPage)
		assert.Equal(t, 5, res.PageSize)
		assert.False(t, res.NoResults)
	})
}
