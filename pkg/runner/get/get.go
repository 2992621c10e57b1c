// Package get provides the runner for rendering the todo projection.
package get

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/todo"
)

type Get struct {
	ShowID bool
	Table  bool

	// Watch keeps rendering until ctx is cancelled, reloading whenever the
	// snapshot changes on disk.
	Watch bool

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	n.render()
	if !n.Watch {
		return nil
	}

	changes, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			n.Store.Reload()
			n.render()
		}
	}
}

func (n *Get) render() {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	p := todo.Project(n.Store.List())

	pp.NewLine()
	pp.TitleWithCount("Todo", p.CompletedCount, p.TotalCount)
	if n.Table {
		pp.Table(p)
		return
	}
	pp.Todos(p)
}

// Cal renders the month calendar for the month containing On.
type Cal struct {
	On time.Time

	Store *store.Store
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not render calendar, no store")
	}
	on := n.On
	if on.IsZero() {
		on = time.Now()
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Calendar(on, n.Store.List()...)
	return nil
}
