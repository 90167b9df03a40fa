package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "github.com/mouse-blink/disksort/internal/model"
)

// TUI implements UI using lipgloss styling, switching to an interactive
// Bubble Tea browser when the reports do not fit the terminal.
type TUI struct {
	output io.Writer
	config StartConfig
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
}

// DisplayAlgorithms prints the available algorithms.
func (t *TUI) DisplayAlgorithms(algorithms []m.Algorithm) error {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	lines := make([]string, 0, len(algorithms)+1)
	lines = append(lines, titleStyle().Render("Disk Sort Algorithms"))

	for _, alg := range algorithms {
		lines = append(lines, "  "+nameStyle.Render(string(alg))+descStyle.Render(alg.Description()))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	_, _ = fmt.Fprintf(t.output, "Using %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingRuns shows the number of sort jobs about to run.
func (t *TUI) DisplayUpcomingRuns(count int) {
	_, _ = fmt.Fprintf(t.output, "Upcoming sort jobs: %d\n", count)
}

// DisplayReports renders the reports, paging them when they overflow the terminal.
func (t *TUI) DisplayReports(reports []m.Report) error {
	model := newReportsModel(t.config.showRows)
	model = model.handleReportsMsg(reportsMsg{reports: reports})
	model.width = t.width
	model.height = t.height

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

// renderDisks draws at most limit disks of row, then an ellipsis.
func renderDisks(row m.DiskRow, limit int) string {
	light := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dark := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var sb strings.Builder

	for i := 0; i < row.TotalCount(); i++ {
		if limit >= 0 && i >= limit {
			sb.WriteString("…")
			break
		}

		color, err := row.Get(i)
		if err != nil {
			break
		}

		if color == m.DiskLight {
			sb.WriteString(light.Render("●"))
		} else {
			sb.WriteString(dark.Render("●"))
		}
	}

	return sb.String()
}
