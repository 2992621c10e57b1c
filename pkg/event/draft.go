package event

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate = "2006-01-02"
	layoutTime = "15:04"
)

// Draft is an unconfirmed candidate event: the modal-form shape the parsing
// adapter and the add command both produce. Date and Time stay strings until
// confirmation so the user sees exactly what will be applied.
type Draft struct {
	Title    string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Location string
	Priority Priority
	End      string // optional, RFC3339
}

// StartTime combines Date and Time into a local start timestamp.
func (d Draft) StartTime() (time.Time, error) {
	date := strings.TrimSpace(d.Date)
	if date == "" {
		return time.Time{}, fmt.Errorf("event: draft date is required")
	}
	clock := strings.TrimSpace(d.Time)
	if clock == "" {
		clock = "09:00"
	}
	t, err := time.ParseInLocation(layoutDate+" "+layoutTime, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("event: bad draft start %q %q: %w", date, clock, err)
	}
	return t, nil
}

// Event materializes the draft into a validated event with defaults applied.
// The returned event has no ID; the store assigns one on create.
func (d Draft) Event() (*Event, error) {
	start, err := d.StartTime()
	if err != nil {
		return nil, err
	}
	e := New(strings.TrimSpace(d.Title), start)
	e.Location = strings.TrimSpace(d.Location)
	e.Priority = ParsePriority(string(d.Priority))
	if end := strings.TrimSpace(d.End); end != "" {
		t, err := ParseTime(end)
		if err != nil {
			return nil, fmt.Errorf("event: bad draft end %q: %w", end, err)
		}
		e.End = &Timestamp{Time: t}
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (d Draft) String() string {
	parts := []string{d.Title, d.Date + " " + d.Time}
	if d.Location != "" {
		parts = append(parts, d.Location)
	}
	if d.Priority != "" {
		parts = append(parts, string(d.Priority))
	}
	return strings.Join(parts, ", ")
}
