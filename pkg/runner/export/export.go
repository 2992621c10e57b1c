// Package export provides the runner for writing a backup file of every
// event.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// record is the minimal backup shape: ids and completion flags are not
// exported, so a restored file gets fresh ids and store defaults.
type record struct {
	Title    string           `json:"title"`
	Start    *event.Timestamp `json:"start"`
	End      *event.Timestamp `json:"end"`
	Location string           `json:"location"`
	Priority event.Priority   `json:"priority"`
}

type Export struct {
	// Path of the backup file; defaults to agenda_backup_YYYY-MM-DD.json.
	Path string

	Store *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	all := n.Store.List()
	records := make([]record, 0, len(all))
	for _, e := range all {
		records = append(records, record{
			Title:    e.Title,
			Start:    e.Start,
			End:      e.End,
			Location: e.Location,
			Priority: e.Priority,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	path := n.Path
	if path == "" {
		path = fmt.Sprintf("agenda_backup_%s.json", time.Now().Format("2006-01-02"))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	pp := printers.PrettyPrint{}
	pp.Say(fmt.Sprintf("Exported %d events to %s.", len(records), path))
	return nil
}
