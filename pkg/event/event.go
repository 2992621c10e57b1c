// Package event defines the calendar event model shared by the store,
// projections, and UIs.
package event

import (
	"fmt"
	"strings"
	"time"
)

// Event is a single calendar entry. It is the sole persisted entity; the
// store owns every instance and views hold no independent copies.
type Event struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Start     *Timestamp `json:"start"`
	End       *Timestamp `json:"end"`
	Location  string     `json:"location"`
	Priority  Priority   `json:"priority"`
	Completed bool       `json:"completed"`
}

// New builds an event with the store defaults applied.
func New(title string, start time.Time) *Event {
	return &Event{
		Title:    title,
		Start:    &Timestamp{Time: start},
		Priority: PriorityMedium,
	}
}

// HasStart reports whether the event carries a usable start time. Events
// without one stay in the store but are excluded from the todo view.
func (e *Event) HasStart() bool {
	return e != nil && e.Start != nil && !e.Start.IsZero()
}

// Validate checks the invariants required of any stored event. A missing
// start is allowed here: such events stay in the store and are only
// excluded from the todo view. Creation from a draft separately requires
// a start.
func (e *Event) Validate() error {
	if e == nil {
		return fmt.Errorf("event: nil event")
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event: title is required")
	}
	if e.End != nil && !e.End.IsZero() {
		if !e.HasStart() {
			return fmt.Errorf("event: end without start")
		}
		if e.End.Before(e.Start.Time) {
			return fmt.Errorf("event: end %s is before start %s", e.End, e.Start)
		}
	}
	return nil
}

// Normalize fills defaulted fields in place: unknown priorities collapse to
// medium and an empty end is dropped entirely so it serializes as null.
func (e *Event) Normalize() {
	e.Priority = ParsePriority(string(e.Priority))
	if e.Start != nil && e.Start.IsZero() {
		e.Start = nil
	}
	if e.End != nil && e.End.IsZero() {
		e.End = nil
	}
	e.Title = strings.TrimSpace(e.Title)
	e.Location = strings.TrimSpace(e.Location)
}

// Clone returns a deep copy. The store hands copies out so callers cannot
// mutate its state behind its back.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	if e.Start != nil {
		s := *e.Start
		c.Start = &s
	}
	if e.End != nil {
		n := *e.End
		c.End = &n
	}
	return &c
}

func (e *Event) String() string {
	when := "unscheduled"
	if e.HasStart() {
		when = e.Start.Local().Format("Jan 2 15:04")
	}
	return fmt.Sprintf("%s (%s)", e.Title, when)
}
