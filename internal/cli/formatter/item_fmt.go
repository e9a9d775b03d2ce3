package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
)

// FormatItemList renders planning items as an aligned table.
func FormatItemList(items []*domain.PlanningItem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		when := StyleDim.Render("—")
		if at := item.CalendarDate(); at != nil {
			when = RelativeDateStyled(*at)
		}
		rows = append(rows, []string{
			TruncID(item.ID),
			StyleFg.Render(Truncate(item.Title, 32)),
			StyleDim.Render(string(item.ContentType)),
			PlatformBadge(item.Platform),
			StatusPill(item.Status),
			PriorityPill(item.Priority),
			when,
		})
	}
	return RenderTable(
		[]string{"ID", "Title", "Type", "Platform", "Status", "Priority", "When"},
		rows,
	)
}

// ItemInspectData bundles everything the inspect view shows for one item.
type ItemInspectData struct {
	Item   *domain.PlanningItem
	Client *domain.Client
	Column *domain.KanbanColumn
	Mode   domain.PublishMode
}

// FormatItemInspect renders the full detail card for one planning item.
func FormatItemInspect(data ItemInspectData) string {
	item := data.Item

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(item.Title), PublishBadge(publish.ItemBadge(item, data.Mode, time.Local))))
	b.WriteString(Dim(item.ID) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s %s\n", StatusPill(item.Status), PriorityPill(item.Priority), PlatformBadge(item.Platform)))
	b.WriteString(fmt.Sprintf("%s %s", Dim("Type:"), string(item.ContentType)))
	if data.Column != nil {
		b.WriteString(fmt.Sprintf("   %s %s", Dim("Column:"), data.Column.Title))
	}
	if data.Client != nil {
		b.WriteString(fmt.Sprintf("   %s %s", Dim("Client:"), data.Client.Name))
	}
	b.WriteString("\n")

	if item.ScheduledAt != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Scheduled:"), item.ScheduledAt.Local().Format("Mon 02 Jan 2006 15:04")))
	} else if item.DueDate != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Due:"), HumanDate(*item.DueDate)))
	}
	if item.AssignedTo != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Assigned:"), item.AssignedTo))
	}

	if item.Recurrence.Enabled() {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Repeats:"), describeRecurrence(item.Recurrence)))
	}

	if item.IsThread() && len(item.Metadata.ThreadTweets) > 0 {
		b.WriteString("\n" + Header(fmt.Sprintf("Thread (%d tweets)", len(item.Metadata.ThreadTweets))) + "\n")
		for i, seg := range item.Metadata.ThreadTweets {
			b.WriteString(fmt.Sprintf("%s %s\n", StylePurple.Render(fmt.Sprintf("%d/", i+1)), seg.Text))
			if len(seg.MediaURLs) > 0 {
				b.WriteString(Dim("   🖼 "+strings.Join(seg.MediaURLs, " ")) + "\n")
			}
		}
	} else if item.Content != "" {
		b.WriteString("\n" + Header("Content") + "\n" + item.Content + "\n")
	}

	if len(item.MediaURLs) > 0 {
		b.WriteString("\n" + Dim("Media: "+strings.Join(item.MediaURLs, " ")) + "\n")
	}

	if item.ErrorMessage != "" {
		b.WriteString("\n" + StyleRed.Render("Last error: "+item.ErrorMessage) + "\n")
	}
	if item.ExternalPostID != "" {
		b.WriteString(Dim("Remote post: "+item.ExternalPostID) + "\n")
	}

	return b.String()
}

func describeRecurrence(cfg domain.RecurrenceConfig) string {
	desc := string(cfg.Type)
	if cfg.UsesDays() && len(cfg.Days) > 0 {
		desc += " on " + domain.WeekdayTokens(cfg.Days)
	}
	if cfg.Time != "" {
		desc += " at " + cfg.Time
	}
	if cfg.EndDate != nil {
		desc += " until " + cfg.EndDate.Format("2006-01-02")
	}
	return desc
}
