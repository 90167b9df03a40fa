package controller

import (
	"fmt"

	m "github.com/mouse-blink/disksort/internal/model"
)

// Message types.
type reportsMsg struct {
	reports []m.Report
}

// List item types.
type reportItem struct {
	report m.Report
}

func (r reportItem) FilterValue() string {
	return fmt.Sprintf("%d %s", r.report.N, r.report.Algorithm)
}
