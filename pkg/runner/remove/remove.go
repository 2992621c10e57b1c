// Package remove provides the runner for deleting an event by id.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Remove struct {
	ID string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}

	e, err := n.Store.GetByID(n.ID)
	if err != nil {
		return err
	}
	if err := n.Store.Delete(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Say(fmt.Sprintf("Deleted %q.", e.Title))

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}
