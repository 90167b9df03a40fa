package domain

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/disksort/internal/model"
)

// Job is one unit of batch work: sort the canonical row of size N with Algorithm.
type Job struct {
	N         int
	Algorithm m.Algorithm
}

// Orchestrator builds the canonical row for a job, runs the requested
// algorithm on it and reports what happened.
type Orchestrator interface {
	SortJob(job Job) (m.Report, error)
}

type orchestrator struct {
	now func() time.Time
}

// NewOrchestrator constructs an Orchestrator.
func NewOrchestrator() Orchestrator {
	return &orchestrator{now: time.Now}
}

func (o *orchestrator) SortJob(job Job) (m.Report, error) {
	sorter, err := NewSorter(job.Algorithm)
	if err != nil {
		return m.Report{}, err
	}

	initial, err := m.NewDiskRow(job.N)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to build row of size %d: %w", job.N, err)
	}

	start := o.now()

	result, err := sorter.Sort(initial)
	if err != nil {
		return m.Report{}, fmt.Errorf("failed to sort row of size %d with %s: %w", job.N, job.Algorithm, err)
	}

	elapsed := o.now().Sub(start)
	final := result.Row()

	return m.Report{
		N:         job.N,
		Algorithm: job.Algorithm,
		Initial:   initial,
		Final:     final,
		SwapCount: result.SwapCount(),
		Sorted:    final.IsSorted(),
		Duration:  elapsed,
	}, nil
}
