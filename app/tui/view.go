package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/jobtrack/app/store"
	"github.com/umputun/jobtrack/app/summary"
)

const (
	boardWidth = 28
	tsWidth    = 20
	countWidth = 16
)

// View renders the window
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Job Responses") + "  " + m.renderTabs() + "\n\n")
	b.WriteString(m.input.View() + "\n")
	for i, s := range m.suggestions {
		if i == m.suggCursor {
			b.WriteString(activeSuggestionStyle.Render(s) + "\n")
			continue
		}
		b.WriteString(suggestionStyle.Render(s) + "\n")
	}
	b.WriteString("\n")

	if m.tab == tabSummary {
		b.WriteString(m.renderSummary())
	} else {
		b.WriteString(m.renderRecent())
	}
	b.WriteString("\n")

	if p := m.renderProgress(); p != "" {
		b.WriteString(p + "\n")
	}
	b.WriteString(m.renderBottom())
	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Recent Responses", "Summary"}
	res := make([]string, 0, len(names))
	for i, n := range names {
		if tab(i) == m.tab {
			res = append(res, activeTabStyle.Render(n))
			continue
		}
		res = append(res, tabStyle.Render(n))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, res...)
}

func (m Model) renderRecent() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(pad("Job Board", boardWidth)+" "+pad("Timestamp", tsWidth)) + "\n")
	if len(m.snap.Responses) == 0 {
		b.WriteString(dimStyle.Render("no responses yet") + "\n")
		return b.String()
	}
	end := min(m.offset+m.visibleRows(), len(m.snap.Responses))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i, m.snap.Responses[i]) + "\n")
	}
	return b.String()
}

func (m Model) renderRow(i int, r store.Response) string {
	row := pad(r.Board, boardWidth) + " " + pad(r.Timestamp, tsWidth)
	if i == m.cursor {
		return selectedStyle.Render(row)
	}
	return row
}

func (m Model) renderSummary() string {
	var b strings.Builder
	header := pad("Job Board", boardWidth) + " " + pad("Responses Today", countWidth) + " " + pad("Total Responses", countWidth)
	b.WriteString(headerStyle.Render(header) + "\n")
	if len(m.snap.Summary) == 0 {
		b.WriteString(dimStyle.Render("no responses yet") + "\n")
		return b.String()
	}
	end := min(m.offset+m.visibleRows(), len(m.snap.Summary))
	total := 0
	for _, r := range m.snap.Summary {
		total += r.Total
	}
	for i := m.offset; i < end; i++ {
		r := m.snap.Summary[i]
		row := pad(r.Board, boardWidth) + " " + pad(strconv.Itoa(r.Today), countWidth) + " " + pad(strconv.Itoa(r.Total), countWidth)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}
	all := pad("all", boardWidth) + " " + pad(strconv.Itoa(summary.TodayTotal(m.snap.Summary)), countWidth) + " " +
		pad(strconv.Itoa(total), countWidth)
	b.WriteString(totalStyle.Render(all) + "\n")
	return b.String()
}

func (m Model) renderProgress() string {
	streak := 0
	if m.fb != nil {
		streak = m.fb.Streak()
	}
	if m.goal <= 0 {
		return dimStyle.Render(fmt.Sprintf("streak %d", streak))
	}
	today := summary.TodayTotal(m.snap.Summary)
	pct := min(float64(today)/float64(m.goal), 1.0)
	return fmt.Sprintf("%s %d/%d today  %s", m.bar.ViewAs(pct), today, m.goal, dimStyle.Render(fmt.Sprintf("streak %d", streak)))
}

func (m Model) renderBottom() string {
	var b strings.Builder
	switch m.mode {
	case modeConfirmDelete:
		if m.cursor < len(m.snap.Responses) {
			r := m.snap.Responses[m.cursor]
			b.WriteString(promptStyle.Render(fmt.Sprintf("Delete %s? (y/n)", r)) + "\n")
		}
	case modeExport:
		b.WriteString(promptStyle.Render("Export to: ") + m.pathInput.View() + "\n")
	case modeImport:
		b.WriteString(promptStyle.Render("Import from: ") + m.pathInput.View() + "\n")
	}

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(dimStyle.Render("  Enter/F9: add  Ctrl+D: delete  Ctrl+T: clear today  Ctrl+E: export  Ctrl+O: import  Tab: switch  Ctrl+C: quit"))
	return b.String()
}

func (m Model) visibleRows() int {
	// title, input, suggestions, header, progress, prompt, status and help lines
	rows := m.height - 10 - len(m.suggestions)
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
