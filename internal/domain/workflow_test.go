package domain

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	controllermocks "github.com/mouse-blink/disksort/internal/controller/mocks"
	m "github.com/mouse-blink/disksort/internal/model"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// stubOrchestrator returns canned reports keyed by algorithm.
type stubOrchestrator struct {
	reports map[m.Algorithm]m.Report
	err     error
}

func (s *stubOrchestrator) SortJob(job Job) (m.Report, error) {
	if s.err != nil {
		return m.Report{}, s.err
	}

	report := s.reports[job.Algorithm]
	report.N = job.N
	report.Algorithm = job.Algorithm

	return report, nil
}

func TestWorkflow_List(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayAlgorithms([]m.Algorithm{m.AlgorithmAlternate, m.AlgorithmLawnmower}).Return(nil)

	wf := NewWorkflow(ui, NewOrchestrator(), discardLogger())
	require.NoError(t, wf.List())
}

func TestWorkflow_Run(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayConcurrencyInfo(3, 0, 1).Return()
	ui.EXPECT().DisplayUpcomingRuns(6).Return()

	var got []m.Report

	ui.EXPECT().DisplayReports(mock.Anything).Run(func(reports []m.Report) {
		got = reports
	}).Return(nil)

	wf := NewWorkflow(ui, NewOrchestrator(), discardLogger())
	err := wf.Run(context.Background(), RunArgs{
		Sizes:   []int{4, 1, 2, 4},
		Threads: 3,
	})
	require.NoError(t, err)
	require.Len(t, got, 6)

	wantOrder := []struct {
		n   int
		alg m.Algorithm
	}{
		{1, m.AlgorithmAlternate}, {1, m.AlgorithmLawnmower},
		{2, m.AlgorithmAlternate}, {2, m.AlgorithmLawnmower},
		{4, m.AlgorithmAlternate}, {4, m.AlgorithmLawnmower},
	}

	for i, want := range wantOrder {
		assert.Equal(t, want.n, got[i].N)
		assert.Equal(t, want.alg, got[i].Algorithm)
		assert.True(t, got[i].Sorted)
		assert.Equal(t, want.n*(want.n-1)/2, got[i].SwapCount)
	}
}

func TestWorkflow_RunWithRowsAndShard(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayConcurrencyInfo(1, 1, 2).Return()
	ui.EXPECT().DisplayUpcomingRuns(2).Return()
	ui.EXPECT().DisplayReports(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 &&
			reports[0].N == 1 && reports[0].Algorithm == m.AlgorithmLawnmower &&
			reports[1].N == 2 && reports[1].Algorithm == m.AlgorithmLawnmower
	})).Return(nil)

	wf := NewWorkflow(ui, NewOrchestrator(), discardLogger())
	err := wf.Run(context.Background(), RunArgs{
		Sizes:           []int{1, 2},
		Threads:         0,
		ShardIndex:      1,
		TotalShardCount: 2,
		ShowRows:        true,
	})
	require.NoError(t, err)
}

func TestWorkflow_RunDetectsUnsortedRow(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayConcurrencyInfo(1, 0, 1).Return()
	ui.EXPECT().DisplayUpcomingRuns(1).Return()
	ui.EXPECT().DisplayReports(mock.Anything).Return(nil)

	initial, _ := m.NewDiskRow(2)
	orch := &stubOrchestrator{reports: map[m.Algorithm]m.Report{
		m.AlgorithmAlternate: {Final: initial, Sorted: false},
	}}

	wf := NewWorkflow(ui, orch, discardLogger())
	err := wf.Run(context.Background(), RunArgs{Sizes: []int{2}, Algorithms: []m.Algorithm{m.AlgorithmAlternate}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsorted))
}

func TestWorkflow_RunDetectsDisagreement(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayConcurrencyInfo(1, 0, 1).Return()
	ui.EXPECT().DisplayUpcomingRuns(2).Return()
	ui.EXPECT().DisplayReports(mock.Anything).Return(nil)

	sortedRow, _ := m.ParseDiskRow("L L D D")
	otherRow, _ := m.ParseDiskRow("L L D D L D")
	orch := &stubOrchestrator{reports: map[m.Algorithm]m.Report{
		m.AlgorithmAlternate: {Final: sortedRow, Sorted: true},
		m.AlgorithmLawnmower: {Final: otherRow, Sorted: true},
	}}

	wf := NewWorkflow(ui, orch, discardLogger())
	err := wf.Run(context.Background(), RunArgs{Sizes: []int{2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDisagreement))
}

func TestWorkflow_RunPropagatesJobError(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().Start(mock.Anything).Return(nil)
	ui.EXPECT().Close().Return()
	ui.EXPECT().DisplayConcurrencyInfo(2, 0, 1).Return()
	ui.EXPECT().DisplayUpcomingRuns(2).Return()

	boom := errors.New("boom")
	wf := NewWorkflow(ui, &stubOrchestrator{err: boom}, discardLogger())

	err := wf.Run(context.Background(), RunArgs{Sizes: []int{3}, Threads: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestWorkflow_RunRejectsBadArgs(t *testing.T) {
	wf := NewWorkflow(controllermocks.NewMockUI(t), NewOrchestrator(), discardLogger())

	err := wf.Run(context.Background(), RunArgs{})
	assert.Error(t, err)

	err = wf.Run(context.Background(), RunArgs{Sizes: []int{0}})
	assert.True(t, errors.Is(err, m.ErrConstruction))

	err = wf.Run(context.Background(), RunArgs{Sizes: []int{2}, Algorithms: []m.Algorithm{"bubble"}})
	assert.Error(t, err)
}

func TestShardJobs(t *testing.T) {
	jobs := buildJobs([]int{1, 2, 3}, []m.Algorithm{m.AlgorithmAlternate, m.AlgorithmAlternate})
	require.Len(t, jobs, 3)

	assert.Equal(t, jobs, shardJobs(jobs, 0, 1))
	assert.Equal(t, []Job{jobs[0], jobs[2]}, shardJobs(jobs, 0, 2))
	assert.Equal(t, []Job{jobs[1]}, shardJobs(jobs, 1, 2))
}
