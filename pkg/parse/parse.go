// Package parse turns free-form text into a candidate event draft by way of
// a remote chat-completions model. Every fault on that boundary, from
// transport errors to unparseable payloads, is an AdapterError that
// callers recover into a clarification result; it never aborts a session.
package parse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Result is the adapter's contract with the command layer: either a
// clarification request or a complete draft.
type Result struct {
	NeedsClarification bool   `json:"needsClarification"`
	Title              string `json:"title,omitempty"`
	Date               string `json:"date,omitempty"` // YYYY-MM-DD
	Time               string `json:"time,omitempty"` // HH:MM
	Location           string `json:"location,omitempty"`
	Message            string `json:"message,omitempty"`
}

// AdapterError reports a parsing-service failure. Status is zero for
// transport-level faults.
type AdapterError struct {
	Status int
	Err    error
}

func (e *AdapterError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("parse: service returned %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

// Recover normalizes any adapter fault into the generic clarification
// shown to the user. No raw error text leaks through.
func Recover(err error) *Result {
	_ = err
	return &Result{
		NeedsClarification: true,
		Message:            "Sorry, the assistant is unavailable right now. Please try again later, or add the event directly.",
	}
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	Config     Config
	HTTPClient *http.Client

	// Now supplies the date context baked into the prompt. Tests pin it.
	Now func() time.Time
}

// New builds a client for the given config.
func New(cfg Config) *Client {
	return &Client{
		Config:     cfg,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Now:        time.Now,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Parse submits the text and unwraps the model's JSON reply. The returned
// error is always an *AdapterError; on error the Result is nil and the
// caller should fall back to Recover.
func (c *Client) Parse(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &AdapterError{Err: fmt.Errorf("empty input")}
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: c.prompt(text)},
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, &AdapterError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, &AdapterError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Config.APIKey)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &AdapterError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &AdapterError{Status: resp.StatusCode, Err: fmt.Errorf("%s", strings.TrimSpace(string(msg)))}
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, &AdapterError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(cr.Choices) == 0 {
		return nil, &AdapterError{Err: fmt.Errorf("response has no choices")}
	}

	cleaned := stripFences(cr.Choices[0].Message.Content)
	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &AdapterError{Err: fmt.Errorf("model reply is not valid JSON: %w", err)}
	}
	if !result.NeedsClarification && (result.Title == "" || result.Date == "") {
		return nil, &AdapterError{Err: fmt.Errorf("model reply is missing title or date")}
	}
	return &result, nil
}

// prompt renders the scheduling-assistant template with today's and
// tomorrow's dates so the model can resolve relative time words.
func (c *Client) prompt(text string) string {
	clock := c.Now
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	var b strings.Builder
	b.WriteString("You are a scheduling assistant. Parse the user's natural-language input; as long as you can identify a time and what happens, create an event.\n\n")
	fmt.Fprintf(&b, "User input: %q\n\n", text)
	b.WriteString("Parsing rules (be lenient):\n")
	b.WriteString("1. Any time hint (today, tomorrow, morning, afternoon, an hour of day) plus an activity is enough.\n")
	b.WriteString("2. Location is optional.\n")
	b.WriteString("3. When only a part of day is given, use the defaults: morning 09:00, afternoon 14:00, evening 19:00.\n")
	b.WriteString("4. When no date is given, assume today.\n\n")
	fmt.Fprintf(&b, "Current time: %s\n", now.Format(time.RFC1123))
	fmt.Fprintf(&b, "Today's date: %s\n", today)
	fmt.Fprintf(&b, "Tomorrow's date: %s\n\n", tomorrow)
	b.WriteString("Reply with raw JSON only, no code fences, in this shape:\n")
	b.WriteString(`{"needsClarification": false, "title": "...", "date": "YYYY-MM-DD", "time": "HH:MM", "location": "", "message": "..."}` + "\n")
	b.WriteString(`If you cannot identify a time or activity, reply {"needsClarification": true, "message": "..."} asking for the missing detail.` + "\n")
	return b.String()
}

// stripFences removes a markdown code fence the model may wrap its JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
