package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/runner/add"
	"tableflip.dev/agenda/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add an event",
		Example: `
agenda add "Team sync" --date 2025-03-10 --time 09:00 --priority high
agenda add "Lunch with Sam" -t 12:30 -l "Cafe Presse"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := add.Add{
				Draft: event.Draft{
					Title:    eo.Title,
					Date:     eo.Date,
					Time:     eo.Time,
					End:      eo.End,
					Location: eo.Location,
					Priority: event.ParsePriority(eo.Priority),
				},
				ShowID: io.ShowID,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
