package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pautahq/pauta/internal/board"
)

const calendarCellWidth = 16

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatMonthGrid renders the month view as a text calendar. Each cell shows
// up to the display cap of item titles plus a "+N more" line; the selected
// cell (by grid index, -1 for none) is highlighted.
func FormatMonthGrid(grid board.MonthGrid, selected int) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %d", grid.Month, grid.Year)
	b.WriteString(StyleHeader.Render(title) + "\n\n")

	for _, wd := range weekdayHeader {
		b.WriteString(StyleDim.Render(padCell(wd)))
	}
	b.WriteString("\n")

	// cellHeight: day number plus capped items plus overflow line.
	const cellHeight = 1 + board.DayDisplayCap + 1

	for week := 0; week < board.GridWeeks; week++ {
		lines := make([]string, cellHeight)
		for col := 0; col < 7; col++ {
			idx := week*7 + col
			day := grid.Days[idx]
			cell := renderDayCell(day, idx == selected)
			for i, line := range cell {
				lines[i] += line
			}
		}
		b.WriteString(strings.Join(lines, "\n") + "\n")
	}
	return b.String()
}

func renderDayCell(day board.Day, selected bool) []string {
	numStyle := StyleFg
	if !day.InMonth {
		numStyle = StyleDim
	}
	if sameCalendarDay(day.Date, time.Now()) {
		numStyle = StyleHeader
	}

	num := fmt.Sprintf("%2d", day.Date.Day())
	if selected {
		num = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorHeader).Render(num)
	} else {
		num = numStyle.Render(num)
	}

	lines := []string{num + strings.Repeat(" ", calendarCellWidth-2)}
	for _, item := range day.Visible() {
		label := Truncate(item.Title, calendarCellWidth-3)
		lines = append(lines, " "+StyleBlue.Render(padCellText(label))+" ")
	}
	for len(lines) < 1+board.DayDisplayCap {
		lines = append(lines, strings.Repeat(" ", calendarCellWidth))
	}
	if n := day.Overflow(); n > 0 {
		lines = append(lines, " "+StyleDim.Render(padCellText(fmt.Sprintf("+%d more", n)))+" ")
	} else {
		lines = append(lines, strings.Repeat(" ", calendarCellWidth))
	}
	return lines
}

func padCell(s string) string {
	return s + strings.Repeat(" ", calendarCellWidth-lipgloss.Width(s))
}

func padCellText(s string) string {
	w := calendarCellWidth - 2
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
