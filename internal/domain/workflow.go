package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/disksort/internal/controller"
	m "github.com/mouse-blink/disksort/internal/model"
)

var (
	// ErrUnsorted is returned when an algorithm leaves a row unsorted.
	ErrUnsorted = errors.New("row not sorted")
	// ErrDisagreement is returned when algorithms finish the same row differently.
	ErrDisagreement = errors.New("algorithms disagree on final row")
)

// RunArgs configures a batch run.
type RunArgs struct {
	Sizes           []int
	Algorithms      []m.Algorithm
	Threads         int
	ShardIndex      int
	TotalShardCount int
	ShowRows        bool
}

// Workflow defines the batch operations exposed to the command line.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List() error
}

type workflow struct {
	ui     controller.UI
	orch   Orchestrator
	logger *log.Logger
}

// NewWorkflow creates a Workflow that reports through ui.
func NewWorkflow(ui controller.UI, orch Orchestrator, logger *log.Logger) Workflow {
	if logger == nil {
		logger = log.Default()
	}

	return &workflow{
		ui:     ui,
		orch:   orch,
		logger: logger,
	}
}

// List displays every supported algorithm.
func (w *workflow) List() error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayAlgorithms(Algorithms())
}

// Run sorts the canonical row of every requested size with every requested
// algorithm, checks that all rows ended sorted and that algorithms agree per
// size, then displays the reports.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	args, err := normalizeRunArgs(args)
	if err != nil {
		return err
	}

	options := []controller.StartOption{controller.WithRunMode()}
	if args.ShowRows {
		options = append(options, controller.WithRows())
	}

	if err := w.ui.Start(options...); err != nil {
		return err
	}
	defer w.ui.Close()

	jobs := shardJobs(buildJobs(args.Sizes, args.Algorithms), args.ShardIndex, args.TotalShardCount)

	w.ui.DisplayConcurrencyInfo(args.Threads, args.ShardIndex, args.TotalShardCount)
	w.ui.DisplayUpcomingRuns(len(jobs))

	start := time.Now()

	reports, err := w.runJobs(ctx, jobs, args.Threads)
	if err != nil {
		return err
	}

	sortReports(reports)

	w.logger.Infof("Sorted %d rows (%s)", len(reports), time.Since(start).Round(time.Millisecond))

	if err := w.ui.DisplayReports(reports); err != nil {
		return err
	}

	return verifyReports(reports)
}

func (w *workflow) runJobs(ctx context.Context, jobs []Job, threads int) ([]m.Report, error) {
	reports := make([]m.Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			w.logger.Debug("sorting", "n", job.N, "algorithm", job.Algorithm)

			report, err := w.orch.SortJob(job)
			if err != nil {
				return fmt.Errorf("job %d (n=%d, %s): %w", i, job.N, job.Algorithm, err)
			}

			w.logger.Debug("sorted", "n", job.N, "algorithm", job.Algorithm, "swaps", report.SwapCount)
			reports[i] = report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func normalizeRunArgs(args RunArgs) (RunArgs, error) {
	if len(args.Sizes) == 0 {
		return args, fmt.Errorf("no sizes given")
	}

	for _, n := range args.Sizes {
		if n <= 0 {
			return args, fmt.Errorf("size %d: %w", n, m.ErrConstruction)
		}
	}

	if len(args.Algorithms) == 0 {
		args.Algorithms = Algorithms()
	}

	for _, alg := range args.Algorithms {
		if _, err := NewSorter(alg); err != nil {
			return args, err
		}
	}

	if args.Threads <= 0 {
		args.Threads = 1
	}

	if args.TotalShardCount <= 0 || args.ShardIndex < 0 || args.ShardIndex >= args.TotalShardCount {
		args.ShardIndex, args.TotalShardCount = 0, 1
	}

	return args, nil
}

// buildJobs pairs every distinct size with every distinct algorithm, in input order.
func buildJobs(sizes []int, algorithms []m.Algorithm) []Job {
	seenSizes := make(map[int]bool)
	seenAlgs := make(map[m.Algorithm]bool)

	var algs []m.Algorithm

	for _, alg := range algorithms {
		if !seenAlgs[alg] {
			seenAlgs[alg] = true

			algs = append(algs, alg)
		}
	}

	var jobs []Job

	for _, n := range sizes {
		if seenSizes[n] {
			continue
		}

		seenSizes[n] = true

		for _, alg := range algs {
			jobs = append(jobs, Job{N: n, Algorithm: alg})
		}
	}

	return jobs
}

// shardJobs keeps the jobs whose position modulo total equals index.
func shardJobs(jobs []Job, index, total int) []Job {
	if total <= 1 {
		return jobs
	}

	sharded := make([]Job, 0, len(jobs)/total+1)

	for i, job := range jobs {
		if i%total == index {
			sharded = append(sharded, job)
		}
	}

	return sharded
}

func sortReports(reports []m.Report) {
	rank := make(map[m.Algorithm]int)
	for i, alg := range Algorithms() {
		rank[alg] = i
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].N != reports[j].N {
			return reports[i].N < reports[j].N
		}

		return rank[reports[i].Algorithm] < rank[reports[j].Algorithm]
	})
}

// verifyReports checks every row ended sorted and each size has one final row.
func verifyReports(reports []m.Report) error {
	first := make(map[int]m.Report)

	for _, report := range reports {
		if !report.Sorted {
			return fmt.Errorf("%s on n=%d left %q: %w", report.Algorithm, report.N, report.Final, ErrUnsorted)
		}

		ref, ok := first[report.N]
		if !ok {
			first[report.N] = report
			continue
		}

		if !ref.Final.Equal(report.Final) {
			return fmt.Errorf("n=%d: %s gave %q, %s gave %q: %w",
				report.N, ref.Algorithm, ref.Final, report.Algorithm, report.Final, ErrDisagreement)
		}
	}

	return nil
}
