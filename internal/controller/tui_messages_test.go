package controller

import (
	"testing"

	m "github.com/mouse-blink/disksort/internal/model"
)

func TestReportItem_FilterValue(t *testing.T) {
	item := reportItem{report: m.Report{N: 12, Algorithm: m.AlgorithmLawnmower}}
	if got := item.FilterValue(); got != "12 lawnmower" {
		t.Fatalf("FilterValue() = %q, want %q", got, "12 lawnmower")
	}
}
