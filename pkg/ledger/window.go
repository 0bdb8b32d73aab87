// Package ledger tracks the weekly discount allowance consumed by natural
// persons. Entries live for the duration of one batch run.
package ledger

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// DefaultDateLayout is the layout transaction dates are written in.
const DefaultDateLayout = "2006-01-02"

// Window describes how dates are bucketed into weeks.
type Window struct {
	FirstDay time.Weekday
	LastDay  time.Weekday
	Layout   string
}

// DefaultWindow is a Monday to Sunday week over ISO dates.
func DefaultWindow() Window {
	return Window{FirstDay: time.Monday, LastDay: time.Sunday, Layout: DefaultDateLayout}
}

// Parse parses a transaction date with the window layout.
func (w Window) Parse(value string) (time.Time, error) {
	return time.Parse(w.layout(), strings.TrimSpace(value))
}

// Bounds returns the first and the last instant of the week containing t.
// The start is midnight of the most recent FirstDay; the end is 23:59:59
// of the next LastDay counted from the start. The time of day of t is
// ignored, so every instant of a week yields the same bounds.
func (w Window) Bounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())

	back := (7 + int(day.Weekday()) - int(w.FirstDay)) % 7
	start := day.AddDate(0, 0, -back)
	forward := (7 - int(start.Weekday()) + int(w.LastDay)) % 7
	ey, em, ed := start.AddDate(0, 0, forward).Date()
	return start, time.Date(ey, em, ed, 23, 59, 59, 0, t.Location())
}

// Key derives the ledger key for a user's transaction at t.
func (w Window) Key(t time.Time, userID string) string {
	start, end := w.Bounds(t)
	sum := md5.Sum([]byte(fmt.Sprintf(
		"%s#%s#%s",
		start.Format(w.layout()),
		end.Format(w.layout()),
		userID,
	)))
	return hex.EncodeToString(sum[:])
}

// Format formats t with the window layout.
func (w Window) Format(t time.Time) string {
	return t.Format(w.layout())
}

func (w Window) layout() string {
	if w.Layout == "" {
		return DefaultDateLayout
	}
	return w.Layout
}

// ParseWeekday accepts English day names ("monday", "Mon") case-insensitively.
func ParseWeekday(value string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || (len(v) == 3 && strings.HasPrefix(name, v)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", value)
}
