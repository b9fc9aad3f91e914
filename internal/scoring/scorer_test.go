package scoring

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/alexanderramin/assay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n, k int) []domain.ChecklistItem {
	out := make([]domain.ChecklistItem, n)
	for i := range out {
		out[i] = domain.ChecklistItem{
			ID:      fmt.Sprintf("item-%d", i),
			Label:   fmt.Sprintf("Item %d", i),
			Checked: i < k,
		}
	}
	return out
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		checked, total, want int
	}{
		{0, 4, 0},
		{1, 4, 25},
		{1, 8, 13}, // 12.5
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
		{7, 12, 58},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.checked, tt.total), func(t *testing.T) {
			got, err := Percent(tt.checked, tt.total)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPercent_ZeroTotal(t *testing.T) {
	_, err := Percent(0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScore_MatchesRoundedRatio(t *testing.T) {
	for n := 1; n <= 16; n++ {
		for k := 0; k <= n; k++ {
			res, err := Score(items(n, k))
			require.NoError(t, err)
			want := int(math.Floor(float64(k)/float64(n)*100 + 0.5))
			assert.Equal(t, want, res.Percentage, "n=%d k=%d", n, k)
			assert.Len(t, res.UncheckedLabels, n-k)
			assert.Equal(t, k, res.Checked)
			assert.Equal(t, n, res.Total)
		}
	}
}

func TestScore_AllChecked(t *testing.T) {
	res, err := Score(items(12, 12))
	require.NoError(t, err)
	assert.Equal(t, 100, res.Percentage)
	assert.Empty(t, res.UncheckedLabels)
	assert.True(t, res.Complete())
}

func TestScore_NoneChecked(t *testing.T) {
	in := items(5, 0)
	res, err := Score(in)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Percentage)
	assert.Equal(t, []string{"Item 0", "Item 1", "Item 2", "Item 3", "Item 4"}, res.UncheckedLabels)
}

func TestScore_PreservesUncheckedOrder(t *testing.T) {
	in := []domain.ChecklistItem{
		{ID: "c", Label: "Charlie"},
		{ID: "a", Label: "Alpha", Checked: true},
		{ID: "b", Label: "Bravo"},
	}
	res, err := Score(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Bravo"}, res.UncheckedLabels)
	assert.Equal(t, 33, res.Percentage)
}

func TestScore_EmptyIsInvalid(t *testing.T) {
	_, err := Score(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, strings.Contains(err.Error(), "empty checklist"))
}
