package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/export"
	"tableflip.dev/agenda/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:     "export [FILE]",
		Aliases: []string{"backup"},
		Short:   "Back up all events to a JSON file",
		Example: `
agenda export
agenda export my-events.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := export.Export{
				Path:  path,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	topLevel.AddCommand(cmd)
}
