package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/store"
)

func addCal(topLevel *cobra.Command) {
	var on time.Time

	cmd := &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Show a month calendar of event days",
		Example: `
agenda cal
agenda cal 2025-03
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return fmt.Errorf("expected at most one month argument")
			}
			var err error
			on, err = time.ParseInLocation("2006-01", args[0], time.Local)
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := get.Cal{
				On:    on,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	topLevel.AddCommand(cmd)
}
