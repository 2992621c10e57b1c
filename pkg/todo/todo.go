// Package todo derives the display ordering and summary counts from the
// event store's current contents. The projection is recomputed in full on
// every call, so it can never drift from the store.
package todo

import (
	"sort"

	"tableflip.dev/agenda/pkg/event"
)

// Projection is the ordered todo view plus its aggregate counts. It is a
// read-only derivation; nothing here is persisted.
type Projection struct {
	Items          []*event.Event
	CompletedCount int
	TotalCount     int
}

// Project filters to events with a start, orders incomplete before
// completed and then chronologically, and counts the result. The sort is
// stable: events tied on (completed, start) keep their insertion order.
func Project(events []*event.Event) Projection {
	items := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if e.HasStart() {
			items = append(items, e)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Completed != items[j].Completed {
			return !items[i].Completed
		}
		return items[i].Start.Before(items[j].Start.Time)
	})

	p := Projection{Items: items, TotalCount: len(items)}
	for _, e := range items {
		if e.Completed {
			p.CompletedCount++
		}
	}
	return p
}
