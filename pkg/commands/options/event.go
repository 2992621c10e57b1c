// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

// EventOptions captures the modal-form fields for add and edit commands.
type EventOptions struct {
	Title    string
	Date     string
	Time     string
	End      string
	ClearEnd bool
	Location string
	Priority string
}

// AddEventArgs wires the event form flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", time.Now().Format("2006-01-02"),
		"Event date, YYYY-MM-DD.")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "09:00",
		"Event time, HH:MM.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"Optional end timestamp, RFC3339.")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "",
		"Event location.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority: high, medium, or low.")
}

// AddClearEndArg registers the flag that removes an event's end time.
func AddClearEndArg(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().BoolVar(&o.ClearEnd, "clear-end", false,
		"Remove the end timestamp.")
}
