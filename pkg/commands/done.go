package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/complete"
	"tableflip.dev/agenda/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done ID",
		Aliases: []string{"complete", "toggle"},
		Short:   "Toggle an event's completion",
		Example: `
agenda done 171dff69f8b99dca
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an event id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := complete.Toggle{
				ID:    io.ID,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	topLevel.AddCommand(cmd)
}
