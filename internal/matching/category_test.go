package matching

import (
	"testing"

	"github.com/jonathan/o1-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Thresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected types.MatchCategory
	}{
		{100, types.CategoryExcellent},
		{85, types.CategoryExcellent},
		{84, types.CategoryGood},
		{70, types.CategoryGood},
		{69, types.CategoryFair},
		{50, types.CategoryFair},
		{49, types.CategoryPoor},
		{0, types.CategoryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Category(tt.score), "score %d", tt.score)
	}
}
