// Package restore provides the runner for replacing the store from a
// backup file.
package restore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Restore struct {
	Path string

	Store *store.Store
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}
	if n.Path == "" {
		return errors.New("import requires a file path")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("import: read %s: %w", n.Path, err)
	}

	// Records may omit id and completed; the store fills the defaults. A
	// file that is not a JSON array fails here, before the store is touched.
	var events []*event.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return &store.ValidationError{Err: fmt.Errorf("%s is not a JSON event array: %w", n.Path, err)}
	}

	report, err := n.Store.ReplaceAll(events)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Say(fmt.Sprintf("Imported %d events from %s.", report.Installed, n.Path))
	for _, skip := range report.Skipped {
		pp.Say(fmt.Sprintf("Skipped record %d: %s.", skip.Index, skip.Reason))
	}

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}
