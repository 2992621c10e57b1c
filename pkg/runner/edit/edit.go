// Package edit provides the runner for merging field changes into an event.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Edit struct {
	ID     string
	Fields store.Fields

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}

	e, err := n.Store.Edit(n.ID, n.Fields)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Say(fmt.Sprintf("Updated %q, priority %s.", e.Title, e.Priority))

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}
