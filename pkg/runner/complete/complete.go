// Package complete provides the runner for toggling an event's completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

// Toggle flips the completed flag of the event with the configured ID.
type Toggle struct {
	ID string

	Store *store.Store
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete, no store")
	}

	current, err := n.Store.GetByID(n.ID)
	if err != nil {
		return err
	}
	e, err := n.Store.SetCompleted(n.ID, !current.Completed)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	action := "Completed"
	if !e.Completed {
		action = "Reopened"
	}
	pp.Say(fmt.Sprintf("%s %q.", action, e.Title))

	p := todo.Project(n.Store.List())
	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	pp.Todos(p)
	return nil
}
