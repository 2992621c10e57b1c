package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/restore"
	"tableflip.dev/agenda/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:     "import FILE",
		Aliases: []string{"restore"},
		Short:   "Replace all events from a backup file",
		Long: `Replaces the entire store with the events in the file. Invalid records
are skipped and reported; they are never installed as-is.`,
		Example: `
agenda import my-events.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file path")
			}
			path = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := restore.Restore{
				Path:  path,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	topLevel.AddCommand(cmd)
}
