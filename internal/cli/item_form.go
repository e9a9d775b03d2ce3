package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/pautahq/pauta/internal/cli/formatter"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/publish"
)

// pautaHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pautaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// threadEditorSeparator delimits tweets inside the thread text area.
const threadEditorSeparator = "---"

// itemFormView wraps a huh form for creating or editing a planning item.
type itemFormView struct {
	state    *SharedState
	form     *huh.Form
	editing  *domain.PlanningItem
	columnID string

	title       string
	content     string
	thread      string
	contentType string
	clientID    string
	priority    string
	due         string
	at          string

	recurType  string
	recurDays  string
	recurTime  string
	recurUntil string

	saveErr error
}

func newItemFormView(state *SharedState, editing *domain.PlanningItem, columnID string) *itemFormView {
	v := &itemFormView{
		state:       state,
		editing:     editing,
		columnID:    columnID,
		contentType: string(domain.ContentTweet),
		clientID:    state.ActiveClientID,
		priority:    string(domain.PriorityMedium),
		recurType:   string(domain.RecurrenceNone),
	}
	if editing != nil {
		v.title = editing.Title
		v.content = editing.Content
		v.contentType = string(editing.ContentType)
		v.clientID = editing.ClientID
		v.priority = string(editing.Priority)
		v.columnID = editing.ColumnID
		if editing.DueDate != nil {
			v.due = editing.DueDate.Format("2006-01-02")
		}
		if editing.ScheduledAt != nil {
			v.at = editing.ScheduledAt.Local().Format("2006-01-02 15:04")
		}
		if editing.IsThread() {
			v.thread = threadEditorText(editing.Metadata.ThreadTweets)
		}
		if editing.Recurrence.Enabled() {
			v.recurType = string(editing.Recurrence.Type)
			v.recurDays = domain.WeekdayTokens(editing.Recurrence.Days)
			v.recurTime = editing.Recurrence.Time
			if editing.Recurrence.EndDate != nil {
				v.recurUntil = editing.Recurrence.EndDate.Format("2006-01-02")
			}
		}
	}
	v.form = v.buildForm()
	return v
}

func (v *itemFormView) clientOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(no client)", "")}
	clients, err := v.state.App.Clients.List(context.Background(), false)
	if err != nil {
		return opts
	}
	for _, c := range clients {
		opts = append(opts, huh.NewOption(c.Name, c.ID))
	}
	return opts
}

func (v *itemFormView) columnOptions() []huh.Option[string] {
	columns, err := v.state.App.Columns.List(context.Background())
	if err != nil {
		return nil
	}
	opts := make([]huh.Option[string], 0, len(columns))
	for _, col := range columns {
		opts = append(opts, huh.NewOption(col.Title, col.ID))
	}
	return opts
}

func (v *itemFormView) buildForm() *huh.Form {
	typeOptions := []huh.Option[string]{
		huh.NewOption("Tweet", "tweet"),
		huh.NewOption("Thread", "thread"),
		huh.NewOption("Instagram post", "post"),
		huh.NewOption("Reel", "reel"),
		huh.NewOption("Story", "story"),
		huh.NewOption("LinkedIn post", "linkedin_post"),
		huh.NewOption("Video script", "video_script"),
		huh.NewOption("Blog post", "blog_post"),
	}
	priorityOptions := []huh.Option[string]{
		huh.NewOption("Low", "low"),
		huh.NewOption("Medium", "medium"),
		huh.NewOption("High", "high"),
		huh.NewOption("Urgent", "urgent"),
	}
	recurOptions := []huh.Option[string]{
		huh.NewOption("None", "none"),
		huh.NewOption("Daily", "daily"),
		huh.NewOption("Weekly", "weekly"),
		huh.NewOption("Biweekly", "biweekly"),
		huh.NewOption("Monthly", "monthly"),
	}

	details := huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&v.title).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("title is required")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Content Type").
			Options(typeOptions...).
			Value(&v.contentType),
		huh.NewSelect[string]().
			Title("Client").
			Options(v.clientOptions()...).
			Value(&v.clientID),
		huh.NewSelect[string]().
			Title("Column").
			Options(v.columnOptions()...).
			Value(&v.columnID),
		huh.NewSelect[string]().
			Title("Priority").
			Options(priorityOptions...).
			Value(&v.priority),
	)

	content := huh.NewGroup(
		huh.NewText().
			Title("Content").
			Value(&v.content).
			Lines(5),
	).WithHideFunc(func() bool {
		return v.contentType == string(domain.ContentThread)
	})

	threadEditor := huh.NewGroup(
		huh.NewText().
			Title("Thread (tweets separated by " + threadEditorSeparator + " lines)").
			Value(&v.thread).
			Lines(8).
			Validate(func(s string) error {
				return domain.ValidateThread(parseThreadEditor(s))
			}),
	).WithHideFunc(func() bool {
		return v.contentType != string(domain.ContentThread)
	})

	schedule := huh.NewGroup(
		huh.NewInput().
			Title("Due Date (YYYY-MM-DD, blank for none)").
			Placeholder("2026-09-15").
			Value(&v.due).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Schedule (YYYY-MM-DD HH:MM, blank for none)").
			Placeholder("2026-09-15 09:00").
			Value(&v.at).
			Validate(validateOptionalDateTime),
	)

	recurrence := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Repeats").
			Options(recurOptions...).
			Value(&v.recurType),
		huh.NewInput().
			Title("On days (weekly/biweekly, e.g. mon,fri)").
			Value(&v.recurDays).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				_, err := domain.ParseWeekdays(s)
				return err
			}),
		huh.NewInput().
			Title("At time (HH:MM, blank for 09:00)").
			Value(&v.recurTime).
			Validate(func(s string) error {
				if s == "" {
					return nil
				}
				if _, err := time.Parse("15:04", s); err != nil {
					return fmt.Errorf("expected HH:MM")
				}
				return nil
			}),
		huh.NewInput().
			Title("Until (YYYY-MM-DD, blank for no end)").
			Value(&v.recurUntil).
			Validate(validateOptionalDate),
	)

	return huh.NewForm(details, content, threadEditor, schedule, recurrence).
		WithTheme(pautaHuhTheme()).
		WithShowHelp(false)
}

// parseThreadEditor splits the thread text area into segments on separator
// lines, dropping empty segments.
func parseThreadEditor(s string) []domain.ThreadSegment {
	var segments []domain.ThreadSegment
	for _, part := range strings.Split(s, threadEditorSeparator) {
		if text := strings.TrimSpace(part); text != "" {
			segments = append(segments, domain.ThreadSegment{Text: text})
		}
	}
	return segments
}

// threadEditorText renders segments back into the editable text area form.
func threadEditorText(segments []domain.ThreadSegment) string {
	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return strings.Join(texts, "\n"+threadEditorSeparator+"\n")
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateOptionalDateTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02 15:04", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD HH:MM")
	}
	return nil
}

func (v *itemFormView) ID() ViewID { return ViewItemForm }

func (v *itemFormView) Title() string {
	if v.editing != nil {
		return "Edit Item"
	}
	return "New Item"
}

func (v *itemFormView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *itemFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *itemFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		if err := v.save(); err != nil {
			v.saveErr = err
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		return v, popView()
	}

	return v, cmd
}

func (v *itemFormView) save() error {
	ctx := context.Background()

	var item *domain.PlanningItem
	if v.editing != nil {
		item = v.editing
	} else {
		item = &domain.PlanningItem{}
	}

	item.Title = v.title
	item.Content = v.content
	item.ContentType = domain.ContentType(v.contentType)
	item.ClientID = v.clientID
	item.Priority = domain.Priority(v.priority)

	item.ColumnID = v.columnID
	if item.ColumnID == "" {
		columns, err := v.state.App.Columns.List(ctx)
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			return fmt.Errorf("no board columns exist")
		}
		item.ColumnID = columns[0].ID
	}

	if item.ContentType == domain.ContentThread {
		item.Metadata.ThreadTweets = parseThreadEditor(v.thread)
	}

	item.DueDate = nil
	if v.due != "" {
		d, err := time.ParseInLocation("2006-01-02", v.due, time.Local)
		if err != nil {
			return err
		}
		item.DueDate = &d
	}
	item.ScheduledAt = nil
	if v.at != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04", v.at, time.Local)
		if err != nil {
			return err
		}
		item.ScheduledAt = &t
	}

	cfg := domain.RecurrenceConfig{
		Type: domain.RecurrenceType(v.recurType),
		Time: v.recurTime,
	}
	if v.recurDays != "" {
		days, err := domain.ParseWeekdays(v.recurDays)
		if err != nil {
			return err
		}
		cfg.Days = days
	}
	if v.recurUntil != "" {
		d, err := time.ParseInLocation("2006-01-02", v.recurUntil, time.Local)
		if err != nil {
			return err
		}
		cfg.EndDate = &d
	}
	item.Recurrence = cfg
	item.IsRecurrenceTemplate = cfg.Enabled()

	if v.editing != nil {
		if err := v.state.App.Items.Update(ctx, item); err != nil {
			return err
		}
	} else {
		if err := v.state.App.Items.Create(ctx, item); err != nil {
			return err
		}
	}

	// A scheduled time routes the save through the scheduling contract,
	// which offers the post to the remote scheduler where possible.
	if item.ScheduledAt != nil && publish.CanTransition(item.Status, domain.ItemScheduled) {
		if _, err := v.state.App.Publish.Schedule(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (v *itemFormView) View() string {
	out := "\n" + v.form.View()
	if v.saveErr != nil {
		out += "\n  " + formatter.StyleRed.Render("Error: "+v.saveErr.Error())
	}
	return out
}
