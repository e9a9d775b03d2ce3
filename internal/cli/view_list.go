package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

// itemsLoadedMsg signals that item list data has been loaded.
type itemsLoadedMsg struct {
	items []*domain.PlanningItem
	err   error
}

// listView shows a flat, filterable list of planning items.
type listView struct {
	state   *SharedState
	items   []*domain.PlanningItem
	cursor  int
	loading bool
	err     error

	filtering bool
	filter    string
}

func newListView(state *SharedState) *listView {
	return &listView{state: state, loading: true}
}

func (v *listView) ID() ViewID    { return ViewList }
func (v *listView) Title() string { return "Items" }

func (v *listView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *listView) Init() tea.Cmd {
	return v.loadItems()
}

func (v *listView) loadItems() tea.Cmd {
	app := v.state.App
	filter := repository.ItemFilter{
		ClientID: v.state.ActiveClientID,
		Search:   v.filter,
	}
	return func() tea.Msg {
		items, err := app.Items.List(context.Background(), filter)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (v *listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.items = msg.items
		if v.cursor >= len(v.items) {
			v.cursor = 0
		}
		return v, nil

	case refreshMsg:
		return v, v.loadItems()

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *listView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(v.items) {
			item := v.items[v.cursor]
			return v, pushView(newItemFormView(v.state, item, item.ColumnID))
		}
	case "a":
		return v, pushView(newItemFormView(v.state, nil, ""))
	case "/":
		v.filtering = true
		v.filter = ""
	case "r":
		return v, v.loadItems()
	}
	return v, nil
}

func (v *listView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
		return v, v.loadItems()
	case tea.KeyEnter:
		v.filtering = false
		return v, v.loadItems()
	case tea.KeyBackspace:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
		}
	default:
		if len(msg.String()) == 1 {
			v.filter += msg.String()
		}
	}
	return v, nil
}

func (v *listView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading items...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + "█\n\n")
	}

	if len(v.items) == 0 {
		b.WriteString("  " + formatter.Dim("No items found.") + "\n")
		return b.String()
	}

	for i, item := range v.items {
		marker := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		when := formatter.Dim("—")
		if at := item.CalendarDate(); at != nil {
			when = formatter.RelativeDateStyled(*at)
		}
		b.WriteString(marker +
			titleStyle.Render(formatter.Truncate(item.Title, 36)) + "  " +
			formatter.StatusPill(item.Status) + "  " +
			formatter.PlatformBadge(item.Platform) + "  " +
			when + "\n")
	}
	return b.String()
}
