package model

import (
	"slices"
	"time"
)

// Algorithm names a sorting strategy.
type Algorithm string

const (
	// AlgorithmAlternate runs n+1 alternating even/odd passes.
	AlgorithmAlternate Algorithm = "alternate"
	// AlgorithmLawnmower runs forward/backward double passes until nothing moves.
	AlgorithmLawnmower Algorithm = "lawnmower"
)

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmAlternate, AlgorithmLawnmower}
}

// Supported reports whether a is one of Algorithms.
func (a Algorithm) Supported() bool {
	return slices.Contains(Algorithms(), a)
}

// Report is the outcome of sorting one canonical row with one algorithm.
type Report struct {
	N         int
	Algorithm Algorithm
	Initial   DiskRow
	Final     DiskRow
	SwapCount int
	Sorted    bool
	Duration  time.Duration
}

// Description returns a one line summary of how the algorithm sweeps the row.
func (a Algorithm) Description() string {
	switch a {
	case AlgorithmAlternate:
		return "n+1 passes alternating even and odd adjacent pairs"
	case AlgorithmLawnmower:
		return "left-to-right then right-to-left sweeps until no swaps"
	default:
		return "unknown algorithm"
	}
}
