package domain

import (
	"fmt"

	m "github.com/mouse-blink/disksort/internal/model"
)

// SortLawnmower sorts a copy of before with double passes: a left-to-right
// sweep followed by a right-to-left sweep, each swapping a dark disk that
// sits directly left of a light one. It stops after a double pass that moves
// nothing. ceil(n/2) double passes suffice for the alternating layout; other
// inputs keep sweeping past that bound until the row is sorted.
func SortLawnmower(before m.DiskRow) (m.SortResult, error) {
	after := before.Clone()
	n := after.LightCount()
	bound := (n + 1) / 2
	swaps := 0

	for pass := 0; pass < bound || !after.IsSorted(); pass++ {
		forward, err := sweepForward(&after)
		if err != nil {
			return m.SortResult{}, fmt.Errorf("lawnmower pass %d: %w", pass, err)
		}

		backward, err := sweepBackward(&after)
		if err != nil {
			return m.SortResult{}, fmt.Errorf("lawnmower pass %d: %w", pass, err)
		}

		swaps += forward + backward

		if forward+backward == 0 {
			break
		}
	}

	return m.NewSortResult(after, swaps), nil
}

func sweepForward(row *m.DiskRow) (int, error) {
	swaps := 0

	for j := 0; j < row.TotalCount()-1; j++ {
		swap, err := outOfOrder(*row, j)
		if err != nil {
			return swaps, err
		}

		if !swap {
			continue
		}

		if err := row.Swap(j); err != nil {
			return swaps, err
		}

		swaps++
	}

	return swaps, nil
}

func sweepBackward(row *m.DiskRow) (int, error) {
	swaps := 0

	for j := row.TotalCount() - 1; j > 0; j-- {
		swap, err := outOfOrder(*row, j-1)
		if err != nil {
			return swaps, err
		}

		if !swap {
			continue
		}

		if err := row.Swap(j - 1); err != nil {
			return swaps, err
		}

		swaps++
	}

	return swaps, nil
}
