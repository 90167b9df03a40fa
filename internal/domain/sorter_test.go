package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/disksort/internal/model"
)

type sortCase struct {
	name string
	sort func(m.DiskRow) (m.SortResult, error)
}

func sortCases() []sortCase {
	return []sortCase{
		{name: "alternate", sort: SortAlternate},
		{name: "lawnmower", sort: SortLawnmower},
	}
}

func TestSort_TwoPairs(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			row, err := m.NewDiskRow(2)
			require.NoError(t, err)

			result, err := tc.sort(row)
			require.NoError(t, err)

			assert.Equal(t, "L L D D", result.Row().String())
			assert.Equal(t, 1, result.SwapCount())
		})
	}
}

func TestSort_SinglePairAlreadySorted(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			row, err := m.NewDiskRow(1)
			require.NoError(t, err)

			result, err := tc.sort(row)
			require.NoError(t, err)

			assert.Equal(t, "L D", result.Row().String())
			assert.Zero(t, result.SwapCount())
		})
	}
}

func TestSort_SortsEveryCanonicalRow(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			for n := 1; n <= 64; n++ {
				row, err := m.NewDiskRow(n)
				require.NoError(t, err)

				result, err := tc.sort(row)
				require.NoError(t, err)

				final := result.Row()
				require.True(t, final.IsSorted(), "n=%d final %q", n, final)
				assert.Equal(t, n, final.LightCount())
				assert.Equal(t, n, final.DarkCount())
				// every swap removes exactly one dark-before-light inversion
				assert.Equal(t, n*(n-1)/2, result.SwapCount(), "n=%d", n)
			}
		})
	}
}

func TestSort_LeavesInputUntouched(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			row, err := m.NewDiskRow(5)
			require.NoError(t, err)

			_, err = tc.sort(row)
			require.NoError(t, err)

			assert.True(t, row.IsInitialized())
			assert.Equal(t, "L D L D L D L D L D", row.String())
		})
	}
}

func TestSort_AlreadySortedIsIdempotent(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			row, err := m.ParseDiskRow("L L L D D D")
			require.NoError(t, err)

			result, err := tc.sort(row)
			require.NoError(t, err)

			assert.Zero(t, result.SwapCount())
			assert.True(t, row.Equal(result.Row()))
		})
	}
}

func TestSort_EmptyRow(t *testing.T) {
	for _, tc := range sortCases() {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.sort(m.DiskRow{})
			require.NoError(t, err)

			assert.Zero(t, result.SwapCount())
			assert.Zero(t, result.Row().TotalCount())
		})
	}
}

func TestSort_AlgorithmsAgree(t *testing.T) {
	for n := 1; n <= 32; n++ {
		row, err := m.NewDiskRow(n)
		require.NoError(t, err)

		alt, err := SortAlternate(row)
		require.NoError(t, err)

		lawn, err := SortLawnmower(row)
		require.NoError(t, err)

		assert.True(t, alt.Row().Equal(lawn.Row()), "n=%d: %q vs %q", n, alt.Row(), lawn.Row())
	}
}

func TestSortLawnmower_ReverseRowPastPassBound(t *testing.T) {
	// Fully reversed rows need more than ceil(n/2) double passes.
	row, err := m.ParseDiskRow("D D D D D L L L L L")
	require.NoError(t, err)

	result, err := SortLawnmower(row)
	require.NoError(t, err)

	assert.True(t, result.Row().IsSorted())
	assert.Equal(t, 25, result.SwapCount())
}

func TestNewSorter(t *testing.T) {
	for _, alg := range Algorithms() {
		sorter, err := NewSorter(alg)
		require.NoError(t, err)
		assert.Equal(t, alg, sorter.Algorithm())

		row, _ := m.NewDiskRow(3)
		result, err := sorter.Sort(row)
		require.NoError(t, err)
		assert.True(t, result.Row().IsSorted())
	}

	_, err := NewSorter(m.Algorithm("bogo"))
	assert.Error(t, err)
}
