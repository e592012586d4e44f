package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"middle page", 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
		{"partial last page", 3, []int{21, 22, 23, 24, 25}},
		{"out of range", 4, []int{}},
		{"far out of range", 100, []int{}},
		{"zero falls back to first", 0, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"negative falls back to first", -3, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(items, tt.page))
		})
	}
}

func TestSliceLengthProperty(t *testing.T) {
	for length := 0; length <= 35; length++ {
		items := make([]struct{}, length)
		for page := 1; page <= 5; page++ {
			want := length - PageSize*(page-1)
			if want < 0 {
				want = 0
			}
			if want > PageSize {
				want = PageSize
			}
			assert.Len(t, Slice(items, page), want,
				"length %d page %d", length, page)
		}
	}
}

func TestSliceEmptyInput(t *testing.T) {
	assert.Empty(t, Slice([]string{}, 1))
	assert.Empty(t, Slice([]string(nil), 1))
}

func TestSliceDoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3}
	_ = Slice(items, 1)
	_ = Slice(items, 7)
	assert.Equal(t, []int{1, 2, 3}, items)
}
