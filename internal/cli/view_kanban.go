package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pautahq/pauta/internal/board"
	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

// boardLoadedMsg signals that board data has been loaded.
type boardLoadedMsg struct {
	columns []*domain.KanbanColumn
	byCol   map[string][]*domain.PlanningItem
	modes   map[string]domain.PublishMode
	err     error
}

// kanbanView shows the column board with a movable card cursor.
type kanbanView struct {
	state   *SharedState
	columns []*domain.KanbanColumn
	byCol   map[string][]*domain.PlanningItem
	modes   map[string]domain.PublishMode
	loading bool
	err     error

	cursorCol int
	cursorRow int

	// Move mode: the selected card is being dropped onto another column.
	moving     bool
	movingItem *domain.PlanningItem
	targetCol  int
}

func newKanbanView(state *SharedState) *kanbanView {
	return &kanbanView{state: state, loading: true}
}

func (v *kanbanView) ID() ViewID    { return ViewKanban }
func (v *kanbanView) Title() string { return "Board" }

func (v *kanbanView) ShortHelp() []key.Binding {
	if v.moving {
		return []key.Binding{
			key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("h/l", "pick column")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
			key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hide column")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color by")),
	}
}

func (v *kanbanView) Init() tea.Cmd {
	return loadBoard(v.state)
}

// loadBoard fetches columns and items and resolves each item's mode once.
// Columns hidden in the durable view settings are dropped before partition.
func loadBoard(state *SharedState) tea.Cmd {
	app := state.App
	clientID := state.ActiveClientID
	settings := state.Settings
	return func() tea.Msg {
		ctx := context.Background()

		columns, err := app.Columns.List(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		if settings != nil && len(settings.HiddenColumns) > 0 {
			visible := make([]*domain.KanbanColumn, 0, len(columns))
			for _, col := range columns {
				if !settings.ColumnHidden(col.ID) {
					visible = append(visible, col)
				}
			}
			columns = visible
		}
		items, err := app.Items.List(ctx, repository.ItemFilter{ClientID: clientID})
		if err != nil {
			return boardLoadedMsg{err: err}
		}

		byCol := make(map[string][]*domain.PlanningItem, len(columns))
		for _, ci := range board.Partition(columns, items) {
			byCol[ci.Column.ID] = ci.Items
		}

		modes := make(map[string]domain.PublishMode, len(items))
		for _, item := range items {
			mode, err := app.Publish.Mode(ctx, item)
			if err != nil {
				mode = domain.ModeManual
			}
			modes[item.ID] = mode
		}

		return boardLoadedMsg{columns: columns, byCol: byCol, modes: modes}
	}
}

func (v *kanbanView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.columns = msg.columns
		v.byCol = msg.byCol
		v.modes = msg.modes
		v.clampCursor()
		return v, nil

	case refreshMsg:
		return v, loadBoard(v.state)

	case tea.KeyMsg:
		if v.moving {
			return v.updateMoving(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *kanbanView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.cursorCol > 0 {
			v.cursorCol--
			v.cursorRow = 0
		}
	case "right", "l":
		if v.cursorCol < len(v.columns)-1 {
			v.cursorCol++
			v.cursorRow = 0
		}
	case "up", "k":
		if v.cursorRow > 0 {
			v.cursorRow--
		}
	case "down", "j":
		if v.cursorRow < len(v.currentColumn())-1 {
			v.cursorRow++
		}
	case "m":
		if item := v.selectedItem(); item != nil {
			v.moving = true
			v.movingItem = item
			v.targetCol = v.cursorCol
		}
	case "a":
		return v, pushView(newItemFormView(v.state, nil, v.currentColumnID()))
	case "enter":
		if item := v.selectedItem(); item != nil {
			return v, pushView(newItemFormView(v.state, item, item.ColumnID))
		}
	case "x":
		if v.state.Settings != nil && v.cursorCol < len(v.columns) {
			v.state.Settings.ToggleColumn(v.columns[v.cursorCol].ID)
			_ = v.state.Settings.Save()
			return v, loadBoard(v.state)
		}
	case "X":
		if v.state.Settings != nil && len(v.state.Settings.HiddenColumns) > 0 {
			v.state.Settings.HiddenColumns = nil
			_ = v.state.Settings.Save()
			return v, loadBoard(v.state)
		}
	case "c":
		if v.state.Settings != nil {
			v.state.Settings.CycleColorBy()
			_ = v.state.Settings.Save()
		}
	case "r":
		return v, loadBoard(v.state)
	}
	return v, nil
}

func (v *kanbanView) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.targetCol > 0 {
			v.targetCol--
		}
	case "right", "l":
		if v.targetCol < len(v.columns)-1 {
			v.targetCol++
		}
	case "enter":
		item := v.movingItem
		dest := v.columns[v.targetCol].ID
		v.moving = false
		v.movingItem = nil
		app := v.state.App
		return v, func() tea.Msg {
			if err := app.Items.MoveToColumn(context.Background(), item.ID, dest); err != nil {
				return boardLoadedMsg{err: err}
			}
			return refreshMsg{}
		}
	case "m", "esc":
		v.moving = false
		v.movingItem = nil
	}
	return v, nil
}

func (v *kanbanView) currentColumn() []*domain.PlanningItem {
	if v.cursorCol >= len(v.columns) {
		return nil
	}
	return v.byCol[v.columns[v.cursorCol].ID]
}

func (v *kanbanView) currentColumnID() string {
	if v.cursorCol < len(v.columns) {
		return v.columns[v.cursorCol].ID
	}
	return ""
}

func (v *kanbanView) selectedItem() *domain.PlanningItem {
	items := v.currentColumn()
	if v.cursorRow < len(items) {
		return items[v.cursorRow]
	}
	return nil
}

func (v *kanbanView) clampCursor() {
	if v.cursorCol >= len(v.columns) {
		v.cursorCol = len(v.columns) - 1
	}
	if v.cursorCol < 0 {
		v.cursorCol = 0
	}
	if n := len(v.currentColumn()); v.cursorRow >= n {
		v.cursorRow = n - 1
	}
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
}

func (v *kanbanView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading board...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.columns) == 0 {
		return "\n  " + formatter.Dim("No columns on the board.")
	}

	cursor := formatter.KanbanCursor{Column: v.cursorCol, Row: v.cursorRow}
	if v.moving {
		cursor = formatter.KanbanCursor{Column: v.targetCol, Moving: true}
	}
	colorBy := "status"
	if v.state.Settings != nil {
		colorBy = v.state.Settings.ColorBy
	}
	out := "\n" + formatter.FormatKanban(v.columns, v.byCol, v.modes, cursor, colorBy)
	if v.moving && v.movingItem != nil {
		out += "\n  " + formatter.StyleYellow.Render("Moving: "+v.movingItem.Title)
	}
	return out
}
