// Package status provides the runner reporting store and snapshot stats.
package status

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Status struct {
	Store *store.Store
}

func (n *Status) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not report status, no store")
	}

	p := todo.Project(n.Store.List())
	pp := printers.PrettyPrint{}
	pp.Say(fmt.Sprintf("%d events (%d done), snapshot is %d bytes on disk.",
		n.Store.Len(), p.CompletedCount, n.Store.SnapshotSize()))
	return nil
}
