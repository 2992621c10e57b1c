// Package chat provides the runner behind the free-text front door: it
// routes special commands, forwards everything else to the parsing adapter,
// and applies a confirmed draft to the store.
package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/parse"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/runner/clear"
	"tableflip.dev/agenda/pkg/runner/export"
	"tableflip.dev/agenda/pkg/runner/restore"
	"tableflip.dev/agenda/pkg/runner/status"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

const helpText = `Things you can say:
  export [file]   back up all events to a file
  import <file>   replace all events from a backup file
  clear           delete all events
  status          show storage status
  help            show this help

Anything else is parsed as a new event, e.g. "lunch with Sam tomorrow at noon".`

type Chat struct {
	Text string

	// AutoConfirm applies a parsed draft without the interactive prompt.
	AutoConfirm bool

	// In is the confirmation input, os.Stdin unless a test substitutes it.
	In io.Reader

	Store  *store.Store
	Client *parse.Client
}

func (n *Chat) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not chat, no store")
	}

	text := strings.TrimSpace(n.Text)
	if text == "" {
		return errors.New("chat requires some text")
	}

	if handled, err := n.command(ctx, text); handled {
		return err
	}

	pp := printers.PrettyPrint{}
	if n.Client == nil {
		return errors.New("can not chat, no parsing client")
	}

	result, err := n.Client.Parse(ctx, text)
	if err != nil {
		// Adapter faults never surface as application faults; the session
		// continues with a clarification message and no partial draft.
		result = parse.Recover(err)
	}
	if result.NeedsClarification {
		pp.Say(result.Message)
		return nil
	}

	draft := event.Draft{
		Title:    result.Title,
		Date:     result.Date,
		Time:     result.Time,
		Location: result.Location,
		Priority: event.PriorityMedium,
	}
	pp.Say(fmt.Sprintf("Draft: %s", draft))
	if !n.AutoConfirm && !n.confirm("Add this event? [y/N] ") {
		pp.Say("Okay, cancelled.")
		return nil
	}

	e, err := n.Store.Create(draft)
	if err != nil {
		return err
	}
	msg := result.Message
	if msg == "" {
		msg = fmt.Sprintf("Scheduled %q.", e.Title)
	}
	pp.Say(msg)

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}

// command recognizes the chat-surface special commands before any adapter
// call is made.
func (n *Chat) command(ctx context.Context, text string) (bool, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false, nil
	}

	pp := printers.PrettyPrint{}
	switch fields[0] {
	case "export", "backup":
		r := &export.Export{Store: n.Store}
		if len(fields) > 1 {
			r.Path = strings.Join(strings.Fields(text)[1:], " ")
		}
		return true, r.Do(ctx)
	case "import", "restore":
		if len(fields) < 2 {
			pp.Say("Which file? Say: import <file>")
			return true, nil
		}
		r := &restore.Restore{Store: n.Store, Path: strings.Join(strings.Fields(text)[1:], " ")}
		return true, r.Do(ctx)
	case "clear":
		r := &clear.Clear{Store: n.Store, Confirmed: n.AutoConfirm, In: n.In}
		return true, r.Do(ctx)
	case "status", "storage":
		r := &status.Status{Store: n.Store}
		return true, r.Do(ctx)
	case "help", "commands":
		fmt.Println(helpText)
		return true, nil
	}
	return false, nil
}

func (n *Chat) confirm(prompt string) bool {
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	fmt.Print(prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
