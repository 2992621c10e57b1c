package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/edit"
	"tableflip.dev/agenda/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an event",
		Example: `
agenda edit 171dff69f8b99dca --time 10:30
agenda edit 171dff69f8b99dca --title "Team sync (moved)" --priority low
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}

			fields := store.Fields{}
			flags := cmd.Flags()
			if flags.Changed("title") {
				fields.Title = &eo.Title
			}
			if flags.Changed("date") || flags.Changed("time") {
				// The start merges per part: an unchanged date or time keeps
				// the event's current value.
				current, err := s.GetByID(io.ID)
				if err != nil {
					return output.HandleError(humanize(err))
				}
				date, clock := eo.Date, eo.Time
				if current.HasStart() {
					if !flags.Changed("date") {
						date = current.Start.Local().Format("2006-01-02")
					}
					if !flags.Changed("time") {
						clock = current.Start.Local().Format("15:04")
					}
				}
				start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
				if err != nil {
					return output.HandleError(&store.ValidationError{Err: err})
				}
				fields.Start = &start
			}
			if flags.Changed("end") {
				end, err := event.ParseTime(eo.End)
				if err != nil {
					return output.HandleError(&store.ValidationError{Err: err})
				}
				fields.End = &end
			}
			if eo.ClearEnd {
				fields.ClearEnd = true
			}
			if flags.Changed("location") {
				fields.Location = &eo.Location
			}
			if flags.Changed("priority") {
				p := event.ParsePriority(eo.Priority)
				fields.Priority = &p
			}

			r := edit.Edit{
				ID:     io.ID,
				Fields: fields,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	// --title is flag-only on edit; add takes it positionally.
	cmd.Flags().StringVar(&eo.Title, "title", "", "New event title.")
	options.AddEventArgs(cmd, eo)
	options.AddClearEndArg(cmd, eo)

	topLevel.AddCommand(cmd)
}
