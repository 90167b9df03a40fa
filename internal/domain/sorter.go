// Package domain contains the disk sorting algorithms and the workflow that runs them.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/disksort/internal/model"
)

// Sorter sorts a disk row into the light-then-dark layout.
type Sorter interface {
	Algorithm() m.Algorithm
	Sort(row m.DiskRow) (m.SortResult, error)
}

type sortFunc struct {
	algorithm m.Algorithm
	sort      func(m.DiskRow) (m.SortResult, error)
}

func (s sortFunc) Algorithm() m.Algorithm {
	return s.algorithm
}

func (s sortFunc) Sort(row m.DiskRow) (m.SortResult, error) {
	return s.sort(row)
}

// Algorithms lists every supported algorithm in display order.
func Algorithms() []m.Algorithm {
	return m.Algorithms()
}

// NewSorter returns the Sorter for the named algorithm.
func NewSorter(algorithm m.Algorithm) (Sorter, error) {
	switch algorithm {
	case m.AlgorithmAlternate:
		return sortFunc{algorithm: algorithm, sort: SortAlternate}, nil
	case m.AlgorithmLawnmower:
		return sortFunc{algorithm: algorithm, sort: SortLawnmower}, nil
	default:
		return nil, fmt.Errorf("unsupported algorithm: %q", algorithm)
	}
}

// outOfOrder reports whether the pair at (left, left+1) is a dark disk
// directly before a light one.
func outOfOrder(row m.DiskRow, left int) (bool, error) {
	lc, err := row.Get(left)
	if err != nil {
		return false, err
	}

	rc, err := row.Get(left + 1)
	if err != nil {
		return false, err
	}

	return lc == m.DiskDark && rc == m.DiskLight, nil
}
