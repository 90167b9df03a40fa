package domain

import (
	"fmt"

	m "github.com/mouse-blink/disksort/internal/model"
)

// SortAlternate sorts a copy of before with n+1 passes that alternate
// between pairs starting at even indices and pairs starting at odd indices.
// There is no early exit; the caller's row is left untouched.
func SortAlternate(before m.DiskRow) (m.SortResult, error) {
	after := before.Clone()
	n := after.LightCount()
	swaps := 0

	if n == 0 {
		return m.NewSortResult(after, 0), nil
	}

	for pass := 0; pass <= n; pass++ {
		start, end := 0, 2*n
		if pass%2 == 1 {
			start, end = 1, 2*n-2
		}

		for j := start; j < end; j += 2 {
			swap, err := outOfOrder(after, j)
			if err != nil {
				return m.SortResult{}, fmt.Errorf("alternate pass %d: %w", pass, err)
			}

			if !swap {
				continue
			}

			if err := after.Swap(j); err != nil {
				return m.SortResult{}, fmt.Errorf("alternate pass %d: %w", pass, err)
			}

			swaps++
		}
	}

	return m.NewSortResult(after, swaps), nil
}
