package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
)

const kanbanCardWidth = 26

// KanbanCursor points at a card on the rendered board. Column -1 hides the
// cursor entirely.
type KanbanCursor struct {
	Column int
	Row    int
	Moving bool // move mode: the cursor column is the drop target
}

// FormatKanban renders the board columns side by side. Items carry their
// publication badge; card titles are tinted by the colorBy dimension
// ("status" or "priority") and the cursor card is highlighted.
func FormatKanban(columns []*domain.KanbanColumn, itemsByColumn map[string][]*domain.PlanningItem, modes map[string]domain.PublishMode, cursor KanbanCursor, colorBy string) string {
	rendered := make([]string, 0, len(columns))
	for ci, col := range columns {
		rendered = append(rendered, renderKanbanColumn(col, itemsByColumn[col.ID], modes, cursor, ci, colorBy))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderKanbanColumn(col *domain.KanbanColumn, items []*domain.PlanningItem, modes map[string]domain.PublishMode, cursor KanbanCursor, ci int, colorBy string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1).
		Width(kanbanCardWidth + 2)

	if cursor.Moving && ci == cursor.Column {
		border = border.BorderForeground(ColorHeader)
	}

	titleColor := ColorFg
	if col.Color != "" {
		titleColor = lipgloss.Color(col.Color)
	}
	head := lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(col.Title) +
		StyleDim.Render(fmt.Sprintf(" %d", len(items)))

	var b strings.Builder
	b.WriteString(head + "\n")

	if len(items) == 0 {
		b.WriteString(StyleDim.Render("  (empty)") + "\n")
	}
	for ri, item := range items {
		b.WriteString(renderKanbanCard(item, modes[item.ID], !cursor.Moving && ci == cursor.Column && ri == cursor.Row, colorBy))
	}

	return border.Render(b.String())
}

// cardTint picks the title color for the configured color-by dimension.
func cardTint(item *domain.PlanningItem, colorBy string) lipgloss.Style {
	if colorBy == "priority" {
		switch item.Priority {
		case domain.PriorityUrgent:
			return StyleRed
		case domain.PriorityHigh:
			return StyleYellow
		case domain.PriorityLow:
			return StyleDim
		default:
			return StyleFg
		}
	}
	switch item.Status {
	case domain.ItemDraft:
		return StyleBlue
	case domain.ItemReview:
		return StyleYellow
	case domain.ItemApproved:
		return StyleAqua
	case domain.ItemScheduled, domain.ItemPublishing:
		return StylePurple
	case domain.ItemPublished:
		return StyleGreen
	case domain.ItemFailed:
		return StyleRed
	default:
		return StyleFg
	}
}

func renderKanbanCard(item *domain.PlanningItem, mode domain.PublishMode, selected bool, colorBy string) string {
	marker := "  "
	titleStyle := cardTint(item, colorBy)
	if selected {
		marker = StyleGreen.Render("▸ ")
		titleStyle = StyleBold
	}

	badge := PublishBadge(publish.ItemBadge(item, mode, time.Local))
	line := marker + titleStyle.Render(Truncate(item.Title, kanbanCardWidth-4))
	meta := "   " + StyleDim.Render(string(item.ContentType)) + " " + badge
	return line + "\n" + meta + "\n"
}
