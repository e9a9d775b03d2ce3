package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pautahq/pauta/internal/cli/formatter"
)

// boardModel is the root bubbletea Model for the board TUI. It manages a
// view stack; the bottom view is one of the three board perspectives and can
// be swapped in place without losing the stack above it.
type boardModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

// newBoardModel builds the board starting in the given perspective. The
// choice is session-only and never written back to settings.
func newBoardModel(app *App, settings *Settings, startView string) boardModel {
	state := &SharedState{
		App:      app,
		Settings: settings,
	}

	var home View
	switch startView {
	case "calendar":
		home = newCalendarView(state)
	case "list":
		home = newListView(state)
	default:
		home = newKanbanView(state)
	}

	return boardModel{
		state:     state,
		viewStack: []View{home},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *boardModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *boardModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// switchPerspective swaps the board's base perspective for this session.
func (m *boardModel) switchPerspective(id ViewID) (tea.Model, tea.Cmd) {
	var next View
	switch id {
	case ViewCalendar:
		next = newCalendarView(m.state)
	case ViewList:
		next = newListView(m.state)
	default:
		next = newKanbanView(m.state)
	}

	m.viewStack = []View{next}
	return m, next.Init()
}

func (m boardModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		// Form views own every keystroke while active.
		if v := m.activeView(); v != nil && v.ID() == ViewItemForm {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if len(m.viewStack) > 1 {
				m.viewStack = m.viewStack[:len(m.viewStack)-1]
				return m, refresh()
			}
			m.quitting = true
			return m, tea.Quit
		case "1":
			return m.switchPerspective(ViewKanban)
		case "2":
			return m.switchPerspective(ViewCalendar)
		case "3":
			return m.switchPerspective(ViewList)
		}

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, refresh()
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	var b strings.Builder

	// Header: breadcrumb plus perspective switcher hints.
	crumb := formatter.StyleHeader.Render("pauta") + formatter.Dim(" › ") + formatter.Bold(v.Title())
	if m.state.ActiveClientName != "" {
		crumb += formatter.Dim("  [" + m.state.ActiveClientName + "]")
	}
	b.WriteString(crumb + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", max(1, m.state.Width))) + "\n")

	b.WriteString(v.View())

	// Hint bar.
	hints := []string{"1 kanban", "2 calendar", "3 list"}
	for _, kb := range v.ShortHelp() {
		hints = append(hints, kb.Help().Key+" "+kb.Help().Desc)
	}
	hints = append(hints, "q quit")
	b.WriteString("\n" + formatter.Dim(strings.Join(hints, "  ·  ")))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
