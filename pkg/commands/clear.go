package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/clear"
	"tableflip.dev/agenda/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all events",
		Example: `
agenda clear
agenda clear --yes
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := clear.Clear{
				Confirmed: co.Yes,
				Store:     s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
