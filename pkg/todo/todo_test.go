package todo

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
)

func at(t time.Time) *event.Timestamp {
	return &event.Timestamp{Time: t}
}

func TestProjectOrdersIncompleteFirstThenChronological(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	events := []*event.Event{
		{ID: "a", Title: "late done", Start: at(day.Add(8 * time.Hour)), Completed: true},
		{ID: "b", Title: "afternoon", Start: at(day.Add(14 * time.Hour))},
		{ID: "c", Title: "morning", Start: at(day.Add(9 * time.Hour))},
	}

	p := Project(events)
	got := []string{p.Items[0].ID, p.Items[1].ID, p.Items[2].ID}
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if p.TotalCount != 3 || p.CompletedCount != 1 {
		t.Fatalf("counts = %d/%d", p.CompletedCount, p.TotalCount)
	}
}

func TestProjectExcludesStartless(t *testing.T) {
	events := []*event.Event{
		{ID: "a", Title: "someday"},
		{ID: "b", Title: "scheduled", Start: at(time.Now())},
	}
	p := Project(events)
	if p.TotalCount != 1 || len(p.Items) != 1 || p.Items[0].ID != "b" {
		t.Fatalf("projection = %+v", p)
	}
}

func TestProjectStableForTies(t *testing.T) {
	start := at(time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	events := []*event.Event{
		{ID: "first", Title: "one", Start: start},
		{ID: "second", Title: "two", Start: start},
		{ID: "third", Title: "three", Start: start},
	}
	p := Project(events)
	for i, want := range []string{"first", "second", "third"} {
		if p.Items[i].ID != want {
			t.Fatalf("tie order broken at %d: got %s", i, p.Items[i].ID)
		}
	}
}

func TestProjectHistoryIndependent(t *testing.T) {
	// The projection of any list equals the projection of that same list
	// recomputed later; there is no hidden state between calls.
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	events := []*event.Event{
		{ID: "a", Title: "x", Start: at(day.Add(9 * time.Hour))},
		{ID: "b", Title: "y", Start: at(day.Add(10 * time.Hour)), Completed: true},
	}
	first := Project(events)
	second := Project(events)
	if len(first.Items) != len(second.Items) ||
		first.CompletedCount != second.CompletedCount ||
		first.TotalCount != second.TotalCount {
		t.Fatalf("repeated projections differ: %+v vs %+v", first, second)
	}
	for i := range first.Items {
		if first.Items[i].ID != second.Items[i].ID {
			t.Fatalf("item order differs at %d", i)
		}
	}
}

func TestProjectCreateThenToggle(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	sync := &event.Event{ID: "s", Title: "Team sync", Start: at(day.Add(9 * time.Hour)), Priority: event.PriorityHigh}
	other := &event.Event{ID: "o", Title: "Lunch", Start: at(day.Add(12 * time.Hour))}

	p := Project([]*event.Event{sync, other})
	if p.Items[0].ID != "s" {
		t.Fatalf("earliest incomplete event must come first, got %s", p.Items[0].ID)
	}
	if p.TotalCount != 2 || p.CompletedCount != 0 {
		t.Fatalf("counts = %d/%d", p.CompletedCount, p.TotalCount)
	}

	sync.Completed = true
	p = Project([]*event.Event{sync, other})
	if p.Items[len(p.Items)-1].ID != "s" {
		t.Fatalf("completed event must sort after remaining incomplete ones")
	}
	if p.CompletedCount != 1 {
		t.Fatalf("completedCount = %d, want 1", p.CompletedCount)
	}
}
