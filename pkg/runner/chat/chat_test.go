package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/parse"
	"tableflip.dev/agenda/pkg/store"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return s
}

func newTestClient(t *testing.T, content string, status int) *parse.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "unavailable", status)
			return
		}
		body, err := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
		if err != nil {
			t.Errorf("marshal reply: %v", err)
		}
		w.Write(body)
	}))
	t.Cleanup(srv.Close)

	c := parse.New(parse.Config{APIKey: "test", APIURL: srv.URL, Model: "test"})
	c.Now = func() time.Time {
		return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestChatCreatesOnConfirmedDraft(t *testing.T) {
	s := newTestStore(t)
	c := &Chat{
		Text:        "team sync tomorrow morning",
		AutoConfirm: true,
		Store:       s,
		Client:      newTestClient(t, `{"needsClarification": false, "title": "Team sync", "date": "2025-03-10", "time": "09:00", "message": "Scheduled."}`, http.StatusOK),
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	all := s.List()
	if len(all) != 1 || all[0].Title != "Team sync" {
		t.Fatalf("store = %+v", all)
	}
	want := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	if !all[0].Start.Equal(want) {
		t.Fatalf("start = %v, want %v", all[0].Start, want)
	}
}

func TestChatDeclinedDraftCreatesNothing(t *testing.T) {
	s := newTestStore(t)
	c := &Chat{
		Text:   "team sync tomorrow morning",
		In:     strings.NewReader("n\n"),
		Store:  s,
		Client: newTestClient(t, `{"needsClarification": false, "title": "Team sync", "date": "2025-03-10", "time": "09:00"}`, http.StatusOK),
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("declined draft must not be stored")
	}
}

func TestChatAdapterFailureLeavesSessionUsable(t *testing.T) {
	s := newTestStore(t)
	c := &Chat{
		Text:        "team sync tomorrow morning",
		AutoConfirm: true,
		Store:       s,
		Client:      newTestClient(t, "", http.StatusInternalServerError),
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("adapter faults must not surface, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("no event may be created when parsing fails")
	}
}

func TestChatClarificationCreatesNothing(t *testing.T) {
	s := newTestStore(t)
	c := &Chat{
		Text:   "do the thing",
		Store:  s,
		Client: newTestClient(t, `{"needsClarification": true, "message": "When?"}`, http.StatusOK),
	}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("clarification must not touch the store")
	}
}

func TestChatSpecialCommandsSkipAdapter(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create(event.Draft{Title: "keep", Date: "2025-03-10", Time: "09:00"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// No client is wired; a special command must never need one.
	for _, text := range []string{"status", "help"} {
		c := &Chat{Text: text, Store: s}
		if err := c.Do(context.Background()); err != nil {
			t.Fatalf("%q: %v", text, err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("status and help must leave the store alone")
	}
}

func TestChatClearCommand(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Create(event.Draft{Title: "gone", Date: "2025-03-10", Time: "09:00"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	c := &Chat{Text: "clear", AutoConfirm: true, Store: s}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("clear must empty the store")
	}
}

func TestChatRejectsEmptyText(t *testing.T) {
	c := &Chat{Text: "   ", Store: newTestStore(t)}
	if err := c.Do(context.Background()); err == nil {
		t.Fatalf("expected error for empty text")
	}
}
