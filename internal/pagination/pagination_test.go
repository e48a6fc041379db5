package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pages(entries []Entry) []int {
	var out []int
	for _, e := range entries {
		if e.Ellipsis {
			out = append(out, -1)
		} else {
			out = append(out, e.Page)
		}
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		pageSize int
		total    int
		want     []int // -1 marks an ellipsis
	}{
		{"middle of a long list", 5, 10, 200, []int{1, -1, 3, 4, 5, 6, 7, -1, 20}},
		{"first page", 1, 10, 200, []int{1, 2, 3, -1, 20}},
		{"last page", 20, 10, 200, []int{1, -1, 18, 19, 20}},
		{"near the start", 3, 10, 200, []int{1, 2, 3, 4, 5, -1, 20}},
		{"contiguous head", 4, 10, 200, []int{1, 2, 3, 4, 5, 6, -1, 20}},
		{"single page", 1, 10, 5, []int{1}},
		{"empty list", 1, 10, 0, []int{1}},
		{"gap of one still collapses", 2, 10, 60, []int{1, 2, 3, 4, -1, 6}},
		{"page clamped above range", 99, 10, 30, []int{1, 2, 3}},
		{"page clamped below range", 0, 10, 200, []int{1, 2, 3, -1, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(tt.current, tt.pageSize, tt.total)
			assert.Equal(t, tt.want, pages(got))
		})
	}
}

func TestWindowProperties(t *testing.T) {
	// Sweep every page of several list sizes and check the structural
	// guarantees hold everywhere.
	for _, total := range []int{0, 1, 9, 10, 11, 95, 200, 1001} {
		last := PageCount(10, total)
		for current := 1; current <= last; current++ {
			window := Window(current, 10, total)
			require.NotEmpty(t, window)

			firstCount, lastCount, currentCount := 0, 0, 0
			for i, entry := range window {
				if entry.Ellipsis {
					require.Greater(t, i, 0, "window must not start with an ellipsis")
					require.False(t, window[i-1].Ellipsis,
						"adjacent ellipses at page %d of total %d", current, total)
					continue
				}
				if entry.Page == 1 {
					firstCount++
				}
				if entry.Page == last {
					lastCount++
				}
				if entry.Page == current {
					currentCount++
				}
			}

			require.Equal(t, 1, firstCount, "page 1 exactly once (current=%d total=%d)", current, total)
			require.Equal(t, 1, lastCount, "last page exactly once (current=%d total=%d)", current, total)
			require.Equal(t, 1, currentCount, "current page present (current=%d total=%d)", current, total)
			require.False(t, window[len(window)-1].Ellipsis, "window must not end with an ellipsis")
		}
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 20, PageCount(10, 200))
	assert.Equal(t, 21, PageCount(10, 201))
	assert.Equal(t, 1, PageCount(10, 0))
	assert.Equal(t, 1, PageCount(0, 0))
}
