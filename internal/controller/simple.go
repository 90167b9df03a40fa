package controller

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/disksort/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options)
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// DisplayAlgorithms prints the available algorithms as a table.
func (s *SimpleUI) DisplayAlgorithms(algorithms []m.Algorithm) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Algorithm", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, alg := range algorithms {
		table.Append([]string{string(alg), alg.Description()})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	s.printf("Using %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingRuns shows the number of sort jobs about to run.
func (s *SimpleUI) DisplayUpcomingRuns(count int) {
	s.printf("Upcoming sort jobs: %d\n", count)
}

// DisplayReports prints one table row per report with a swap total footer.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No sort jobs in this shard\n")
		return nil
	}

	header := []string{"N", "Algorithm", "Swaps", "Sorted", "Time"}
	alignment := []int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT}

	if s.config.showRows {
		header = append(header, "Initial", "Final")
		alignment = append(alignment, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment(alignment)

	totalSwaps := 0

	for _, report := range reports {
		row := []string{
			fmt.Sprintf("%d", report.N),
			string(report.Algorithm),
			fmt.Sprintf("%d", report.SwapCount),
			formatSorted(report.Sorted),
			report.Duration.Round(time.Microsecond).String(),
		}
		if s.config.showRows {
			row = append(row, report.Initial.String(), report.Final.String())
		}

		table.Append(row)

		totalSwaps += report.SwapCount
	}

	footer := make([]string, len(header))
	footer[0] = fmt.Sprintf("Total Runs %d", len(reports))
	footer[2] = fmt.Sprintf("%d", totalSwaps)
	table.SetFooter(footer)

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatSorted(sorted bool) string {
	if sorted {
		return "yes"
	}

	return "no"
}
