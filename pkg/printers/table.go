package printers

import (
	"fmt"

	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/todo"
)

// Table prints the projection as an aligned table, one row per item.
func (pp *PrettyPrint) Table(p todo.Projection) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true

	if pp.ShowID {
		table.AddRow("ID", "DONE", "WHEN", "PRIORITY", "TITLE", "LOCATION")
	} else {
		table.AddRow("DONE", "WHEN", "PRIORITY", "TITLE", "LOCATION")
	}

	for _, e := range p.Items {
		done := ""
		if e.Completed {
			done = "✔"
		}
		when := ""
		if e.HasStart() {
			when = e.Start.Local().Format("2006-01-02 15:04")
		}
		if pp.ShowID {
			table.AddRow(e.ID, done, when, string(e.Priority), e.Title, e.Location)
		} else {
			table.AddRow(done, when, string(e.Priority), e.Title, e.Location)
		}
	}

	fmt.Println(table)
}
