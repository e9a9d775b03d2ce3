package board

import (
	"sort"
	"time"

	"github.com/pautahq/pauta/internal/domain"
)

// GridWeeks is the fixed number of week rows in a month grid.
const GridWeeks = 6

// DayDisplayCap is how many items a calendar cell shows before collapsing
// the rest into a "+N more" affordance.
const DayDisplayCap = 3

// Day is one calendar cell: a date and the items placed on it.
type Day struct {
	Date    time.Time
	InMonth bool
	Items   []*domain.PlanningItem
}

// Overflow returns how many items are hidden behind the display cap.
func (d Day) Overflow() int {
	if n := len(d.Items) - DayDisplayCap; n > 0 {
		return n
	}
	return 0
}

// Visible returns the items shown inline, up to the display cap.
func (d Day) Visible() []*domain.PlanningItem {
	if len(d.Items) <= DayDisplayCap {
		return d.Items
	}
	return d.Items[:DayDisplayCap]
}

// MonthGrid is a 6-week Sunday-first month view.
type MonthGrid struct {
	Year  int
	Month time.Month
	Days  [GridWeeks * 7]Day
}

// MonthOf builds the grid for a month and places each item on exactly one
// day: its ScheduledAt if present, else its DueDate; items with neither are
// absent. Cell items sort by time-of-day ascending, date-only placements
// tying at midnight.
func MonthOf(year int, month time.Month, items []*domain.PlanningItem, loc *time.Location) MonthGrid {
	grid := MonthGrid{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday())) // back to Sunday

	byDay := make(map[string][]*domain.PlanningItem)
	for _, item := range items {
		at := item.CalendarDate()
		if at == nil {
			continue
		}
		key := at.In(loc).Format("2006-01-02")
		byDay[key] = append(byDay[key], item)
	}

	for i := range grid.Days {
		date := start.AddDate(0, 0, i)
		key := date.Format("2006-01-02")
		cell := byDay[key]
		sort.SliceStable(cell, func(a, b int) bool {
			ta, tb := minuteOfDay(cell[a], loc), minuteOfDay(cell[b], loc)
			if ta != tb {
				return ta < tb
			}
			return cell[a].ID < cell[b].ID
		})
		grid.Days[i] = Day{Date: date, InMonth: date.Month() == month, Items: cell}
	}
	return grid
}

// minuteOfDay sorts date-only placements at 0.
func minuteOfDay(item *domain.PlanningItem, loc *time.Location) int {
	if item.ScheduledAt == nil {
		return 0
	}
	t := item.ScheduledAt.In(loc)
	return t.Hour()*60 + t.Minute()
}

// Reschedule computes the item's date fields after a drop onto day. It
// rewrites whichever field the item already uses: ScheduledAt keeps its
// time-of-day on the new date, a DueDate moves wholesale. Dropping on the
// item's current day, or dragging an item with no calendar placement, is a
// no-op.
func Reschedule(item *domain.PlanningItem, day time.Time, loc *time.Location) (scheduledAt, dueDate *time.Time, changed bool) {
	current := item.CalendarDate()
	if current == nil {
		return item.ScheduledAt, item.DueDate, false
	}
	if sameDay(current.In(loc), day.In(loc)) {
		return item.ScheduledAt, item.DueDate, false
	}

	if item.ScheduledAt != nil {
		old := item.ScheduledAt.In(loc)
		moved := time.Date(day.Year(), day.Month(), day.Day(),
			old.Hour(), old.Minute(), old.Second(), 0, loc)
		return &moved, item.DueDate, true
	}

	moved := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	return nil, &moved, true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
