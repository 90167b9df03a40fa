package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportsChrome is the number of lines View spends outside the list items:
// title (2), summary (2), border (2), headers (2), filter bar (2), footer (1).
const reportsChrome = 11

// filterBarHeight is the list's own filter line plus its padding.
const filterBarHeight = 2

// reportDelegate renders one report per line.
type reportDelegate struct {
	showRows bool
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(reportItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	nStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6).Align(lipgloss.Right)
	algStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(11)
	swapStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(10).Align(lipgloss.Right)

	statusColor := lipgloss.Color("2")
	status := "sorted"

	if !r.report.Sorted {
		statusColor = lipgloss.Color("1")
		status = "unsorted"
	}

	statusStyle := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(9)

	if isSelected {
		for _, s := range []*lipgloss.Style{&nStyle, &algStyle, &swapStyle, &statusStyle} {
			*s = s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		}
	}

	line := fmt.Sprintf("%s  %s %s  %s %s",
		nStyle.Render(fmt.Sprintf("%d", r.report.N)),
		algStyle.Render(string(r.report.Algorithm)),
		swapStyle.Render(fmt.Sprintf("%d", r.report.SwapCount)),
		statusStyle.Render(status),
		r.report.Duration.Round(time.Microsecond),
	)

	if d.showRows {
		// 6+2+11+1+10+2+9+1 columns plus the duration.
		limit := m.Width() - 54
		if limit < 0 {
			limit = 0
		}

		line += "  " + renderDisks(r.report.Final, limit)
	}

	_, _ = fmt.Fprint(w, line)
}

// reportsModel lists sort reports with totals.
type reportsModel struct {
	width      int
	height     int
	reportList list.Model
	delegate   reportDelegate
	totalRuns  int
	totalSwaps int
	unsorted   int
	rendered   bool
}

func newReportsModel(showRows bool) reportsModel {
	delegate := reportDelegate{showRows: showRows}
	reportList := list.New([]list.Item{}, delegate, 80, 20)
	reportList.SetShowPagination(false)
	reportList.SetShowFilter(true)
	reportList.SetShowHelp(false)
	reportList.SetShowTitle(false)
	reportList.SetShowStatusBar(false)
	reportList.FilterInput.Placeholder = "Filter by size or algorithm…"

	return reportsModel{
		reportList: reportList,
		delegate:   delegate,
	}
}

func (m reportsModel) Init() tea.Cmd {
	return nil
}

func (m reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reportList.SetWidth(m.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.reportList, cmd = m.reportList.Update(msg)
			return m, cmd
		}

	case reportsMsg:
		m = m.handleReportsMsg(msg)
	}

	return m, cmd
}

func (m reportsModel) handleReportsMsg(msg reportsMsg) reportsModel {
	items := make([]list.Item, 0, len(msg.reports))
	m.totalSwaps = 0
	m.unsorted = 0

	for _, report := range msg.reports {
		items = append(items, reportItem{report: report})

		m.totalSwaps += report.SwapCount
		if !report.Sorted {
			m.unsorted++
		}
	}

	m.reportList.SetItems(items)
	m.totalRuns = len(items)
	m.rendered = true

	return m
}

// needsPagination reports whether the list overflows a known terminal height.
func (m reportsModel) needsPagination() bool {
	if m.height <= 0 {
		return false
	}

	return m.totalRuns+reportsChrome > m.height
}

func (m reportsModel) View() string {
	if !m.rendered {
		return "Sorting…\n"
	}

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle().Render("Disk Sort Report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Runs: %s   Swaps: %s   Unsorted: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.totalRuns)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalSwaps)),
		accentStyle.Render(fmt.Sprintf("%d", m.unsorted)),
	))

	parts := []string{title, summary, m.renderTable()}

	if m.needsPagination() {
		footerStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(m.width)

		parts = append(parts, footerStyle.Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m reportsModel) renderTable() string {
	listHeight := m.totalRuns + filterBarHeight
	if m.needsPagination() {
		listHeight = m.height - reportsChrome + filterBarHeight
	}

	if listHeight < filterBarHeight+1 {
		listHeight = filterBarHeight + 1
	}

	listWidth := m.width - 6
	if listWidth < 60 {
		listWidth = 74
	}

	m.reportList.SetHeight(listHeight)
	m.reportList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-11s %10s  %-9s %s", "N", "Algorithm", "Swaps", "Status", "Time"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.reportList.View(),
		),
	)
}
