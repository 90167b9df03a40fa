package model

// SortResult pairs the row a sort finished with and the swaps it took.
// It owns its row; callers get a copy from Row.
type SortResult struct {
	row       DiskRow
	swapCount int
}

// NewSortResult wraps a finished row. The row must not be used by the caller afterwards.
func NewSortResult(after DiskRow, swapCount int) SortResult {
	return SortResult{row: after, swapCount: swapCount}
}

// Row returns a copy of the final row.
func (r SortResult) Row() DiskRow {
	return r.row.Clone()
}

// SwapCount returns the number of adjacent swaps performed.
func (r SortResult) SwapCount() int {
	return r.swapCount
}
