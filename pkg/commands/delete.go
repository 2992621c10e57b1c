package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/remove"
	"tableflip.dev/agenda/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete an event",
		Example: `
agenda delete 171dff69f8b99dca
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
			r := remove.Remove{
				ID:    io.ID,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	topLevel.AddCommand(cmd)
}
