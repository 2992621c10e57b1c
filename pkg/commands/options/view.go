package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions captures how the projection should be rendered.
type ViewOptions struct {
	Table bool
	Watch bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Table, "table", false,
		"Render as an aligned table.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep rendering as the snapshot changes on disk.")
}

// ConfirmOptions gates destructive or auto-applied operations.
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
