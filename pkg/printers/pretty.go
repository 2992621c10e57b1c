package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/todo"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// TitleWithCount prints the todo header with the completed/total summary.
func (pp *PrettyPrint) TitleWithCount(title string, completed, total int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d/%d done\n", completed, total)
}

// Todos prints the projection, one line per item.
func (pp *PrettyPrint) Todos(p todo.Projection) {
	if len(p.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	for _, e := range p.Items {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}

		box := "○"
		printer := t
		if e.Completed {
			box = "✔"
			printer = done
		}
		_, _ = printer.Printf("%s %s %s", box, priorityTag(e.Priority), e.Title)
		if e.HasStart() {
			_, _ = faint.Printf("  %s", e.Start.Local().Format("Jan 2 15:04"))
		}
		if e.Location != "" {
			_, _ = faint.Printf("  @ %s", e.Location)
		}
		fmt.Println("")
	}
	_, _ = t.Println("")
}

// Say prints an assistant-voice chat message.
func (pp *PrettyPrint) Say(msg string) {
	a := color.New(color.FgCyan)
	_, _ = a.Printf("» %s\n", msg)
}

func priorityTag(p event.Priority) string {
	switch p {
	case event.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint("!")
	case event.PriorityLow:
		return color.New(color.FgGreen).Sprint("·")
	default:
		return color.New(color.FgYellow).Sprint("-")
	}
}
