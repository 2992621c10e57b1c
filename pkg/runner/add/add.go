// Package add provides the runner for creating an event from form fields.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Add struct {
	Draft  event.Draft
	ShowID bool

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	e, err := n.Store.Create(n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Say(fmt.Sprintf("Scheduled %q with %s priority.", e.Title, e.Priority))

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}
