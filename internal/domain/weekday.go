package domain

import (
	"fmt"
	"strings"
	"time"
)

var weekdayTokens = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

var tokenByWeekday = map[time.Weekday]string{
	time.Sunday: "sun", time.Monday: "mon", time.Tuesday: "tue",
	time.Wednesday: "wed", time.Thursday: "thu", time.Friday: "fri",
	time.Saturday: "sat",
}

// ParseWeekday maps a three-letter token ("mon") to its weekday.
func ParseWeekday(token string) (time.Weekday, error) {
	d, ok := weekdayTokens[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", token)
	}
	return d, nil
}

// ParseWeekdays maps a comma-separated token list ("mon,wed,fri") to
// weekdays, preserving order. An empty string yields nil.
func ParseWeekdays(tokens string) ([]time.Weekday, error) {
	if strings.TrimSpace(tokens) == "" {
		return nil, nil
	}
	var days []time.Weekday
	for _, tok := range strings.Split(tokens, ",") {
		d, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// WeekdayTokens renders weekdays back to the comma-separated token form.
func WeekdayTokens(days []time.Weekday) string {
	toks := make([]string, len(days))
	for i, d := range days {
		toks[i] = tokenByWeekday[d]
	}
	return strings.Join(toks, ",")
}
