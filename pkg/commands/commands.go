package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("An AI-assisted calendar and todo list on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCal(topLevel)
	addEdit(topLevel)
	addDone(topLevel)
	addDelete(topLevel)
	addChat(topLevel)
	addUI(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addStatus(topLevel)
	addVersion(topLevel)
}

// humanize rewrites store faults into the message the user should see.
// Validation and not-found errors already read well; persistence failures
// get the "may not be saved" wording instead of raw I/O detail.
func humanize(err error) error {
	if err == nil {
		return nil
	}
	var pe *store.PersistenceError
	if errors.As(err, &pe) {
		return fmt.Errorf("your local data may not be saved (%s failed)", pe.Op)
	}
	return err
}
