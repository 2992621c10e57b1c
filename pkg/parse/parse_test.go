package parse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func modelReply(t *testing.T, content string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		t.Fatalf("marshal reply: %v", err)
	}
	return string(body)
}

func testClient(url string) *Client {
	c := New(Config{APIKey: "test-key", APIURL: url, Model: "test-model"})
	c.Now = func() time.Time {
		return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestParseDraft(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(modelReply(t, `{"needsClarification": false, "title": "Team sync", "date": "2025-03-10", "time": "09:00", "location": "", "message": "Scheduled."}`)))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Parse(context.Background(), "team sync tomorrow morning")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.NeedsClarification {
		t.Fatalf("unexpected clarification: %+v", result)
	}
	if result.Title != "Team sync" || result.Date != "2025-03-10" || result.Time != "09:00" {
		t.Fatalf("result = %+v", result)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "test-model" || gotBody.Temperature != 0.3 || gotBody.MaxTokens != 1000 {
		t.Fatalf("request = %+v", gotBody)
	}
	if len(gotBody.Messages) != 1 || !strings.Contains(gotBody.Messages[0].Content, "2025-03-10") {
		t.Fatalf("prompt must carry tomorrow's date, got %q", gotBody.Messages[0].Content)
	}
}

func TestParseStripsCodeFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fenced := "```json\n{\"needsClarification\": false, \"title\": \"Dinner\", \"date\": \"2025-03-09\", \"time\": \"19:00\"}\n```"
		w.Write([]byte(modelReply(t, fenced)))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Parse(context.Background(), "dinner tonight")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.Title != "Dinner" || result.Time != "19:00" {
		t.Fatalf("result = %+v", result)
	}
}

func TestParseClarification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(modelReply(t, `{"needsClarification": true, "message": "When should I schedule that?"}`)))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Parse(context.Background(), "do the thing")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !result.NeedsClarification || result.Message == "" {
		t.Fatalf("result = %+v", result)
	}
}

func TestParseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Parse(context.Background(), "lunch tomorrow")
	ae, ok := err.(*AdapterError)
	if !ok {
		t.Fatalf("expected AdapterError, got %v", err)
	}
	if ae.Status != http.StatusInternalServerError {
		t.Fatalf("status = %d", ae.Status)
	}

	recovered := Recover(err)
	if !recovered.NeedsClarification {
		t.Fatalf("recovery must request clarification")
	}
	if strings.Contains(recovered.Message, "boom") {
		t.Fatalf("raw error text must not reach the user: %q", recovered.Message)
	}
}

func TestParseGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(modelReply(t, "sure, I'd be happy to schedule that for you!")))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Parse(context.Background(), "lunch"); err == nil {
		t.Fatalf("expected AdapterError for non-JSON model reply")
	}
}

func TestParseMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Parse(context.Background(), "lunch"); err == nil {
		t.Fatalf("expected AdapterError for empty choices")
	}
}

func TestParseIncompleteDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(modelReply(t, `{"needsClarification": false, "title": "", "date": ""}`)))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Parse(context.Background(), "lunch"); err == nil {
		t.Fatalf("expected AdapterError for draft missing title and date")
	}
}

func TestParseUnreachable(t *testing.T) {
	c := testClient("http://127.0.0.1:1") // nothing listens here
	_, err := c.Parse(context.Background(), "lunch")
	if _, ok := err.(*AdapterError); !ok {
		t.Fatalf("expected AdapterError, got %v", err)
	}
}
