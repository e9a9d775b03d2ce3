package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pautahq/pauta/internal/board"
	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

// calendarLoadedMsg signals that month data has been loaded.
type calendarLoadedMsg struct {
	grid board.MonthGrid
	err  error
}

// calendarView shows the month grid with a movable day cursor. Grabbing an
// item and dropping it on another day reschedules it.
type calendarView struct {
	state   *SharedState
	grid    board.MonthGrid
	loading bool
	err     error

	year  int
	month time.Month

	cursor  int // index into grid.Days
	itemRow int // which item in the cursor day is selected

	// Grab mode: the selected item follows the day cursor until dropped.
	grabbed *domain.PlanningItem
}

func newCalendarView(state *SharedState) *calendarView {
	now := time.Now()
	return &calendarView{
		state:   state,
		loading: true,
		year:    now.Year(),
		month:   now.Month(),
		cursor:  -1,
	}
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Calendar" }

func (v *calendarView) ShortHelp() []key.Binding {
	if v.grabbed != nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop on day")),
			key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "month")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next item")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab item")),
	}
}

func (v *calendarView) Init() tea.Cmd {
	return v.loadMonth()
}

func (v *calendarView) loadMonth() tea.Cmd {
	app := v.state.App
	clientID := v.state.ActiveClientID
	year, month := v.year, v.month
	return func() tea.Msg {
		items, err := app.Items.List(context.Background(), repository.ItemFilter{ClientID: clientID})
		if err != nil {
			return calendarLoadedMsg{err: err}
		}
		return calendarLoadedMsg{grid: board.MonthOf(year, month, items, time.Local)}
	}
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.grid = msg.grid
		if v.cursor < 0 {
			v.cursor = v.todayIndex()
		}
		v.itemRow = 0
		return v, nil

	case refreshMsg:
		return v, v.loadMonth()

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *calendarView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.cursor > 0 {
			v.cursor--
			v.itemRow = 0
		}
	case "right", "l":
		if v.cursor < len(v.grid.Days)-1 {
			v.cursor++
			v.itemRow = 0
		}
	case "up", "k":
		if v.cursor >= 7 {
			v.cursor -= 7
			v.itemRow = 0
		}
	case "down", "j":
		if v.cursor+7 < len(v.grid.Days) {
			v.cursor += 7
			v.itemRow = 0
		}
	case "[":
		v.year, v.month = prevMonth(v.year, v.month)
		v.cursor = -1
		v.loading = true
		return v, v.loadMonth()
	case "]":
		v.year, v.month = nextMonth(v.year, v.month)
		v.cursor = -1
		v.loading = true
		return v, v.loadMonth()
	case "tab":
		if day := v.currentDay(); day != nil && len(day.Items) > 0 {
			v.itemRow = (v.itemRow + 1) % len(day.Items)
		}
	case "g":
		if v.grabbed != nil {
			v.grabbed = nil
			return v, nil
		}
		if day := v.currentDay(); day != nil && v.itemRow < len(day.Items) {
			v.grabbed = day.Items[v.itemRow]
		}
	case "enter":
		if v.grabbed == nil {
			break
		}
		item := v.grabbed
		v.grabbed = nil
		day := v.grid.Days[v.cursor].Date
		app := v.state.App
		return v, func() tea.Msg {
			if _, err := app.Items.RescheduleDay(context.Background(), item.ID, day); err != nil {
				return calendarLoadedMsg{err: err}
			}
			return refreshMsg{}
		}
	}
	return v, nil
}

func (v *calendarView) currentDay() *board.Day {
	if v.cursor < 0 || v.cursor >= len(v.grid.Days) {
		return nil
	}
	return &v.grid.Days[v.cursor]
}

func (v *calendarView) todayIndex() int {
	now := time.Now()
	for i, day := range v.grid.Days {
		if day.Date.Year() == now.Year() && day.Date.YearDay() == now.YearDay() {
			return i
		}
	}
	return 0
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func (v *calendarView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading calendar...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n" + formatter.FormatMonthGrid(v.grid, v.cursor))

	if day := v.currentDay(); day != nil && len(day.Items) > 0 {
		b.WriteString("\n" + formatter.Header(day.Date.Format("Monday, 02 January")) + "\n")
		for i, item := range day.Items {
			marker := "  "
			if i == v.itemRow {
				marker = formatter.StyleGreen.Render("▸ ")
			}
			when := ""
			if item.ScheduledAt != nil {
				clock := "15:04"
				if v.state.Settings != nil {
					clock = v.state.Settings.ClockLayout()
				}
				when = formatter.Dim(item.ScheduledAt.Local().Format(clock) + " ")
			}
			b.WriteString(fmt.Sprintf("%s%s%s  %s\n", marker, when, item.Title, formatter.StatusPill(item.Status)))
		}
	}

	if v.grabbed != nil {
		b.WriteString("\n  " + formatter.StyleYellow.Render("Moving: "+v.grabbed.Title))
	}
	return b.String()
}
