package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "todo"},
		Short:   "Show the todo list",
		Example: `
agenda get
agenda get --table --show-id
agenda get --watch
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := get.Get{
				ShowID: io.ShowID,
				Table:  vo.Table,
				Watch:  vo.Watch,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
