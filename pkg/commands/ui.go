package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/parse"
	"tableflip.dev/agenda/pkg/store"
	"tableflip.dev/agenda/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the chat UI",
		Example: `
agenda ui
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			return app.Run(s, parse.New(parse.LoadConfig()))
		},
	}

	topLevel.AddCommand(cmd)
}
