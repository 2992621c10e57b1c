package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/parse"
	"tableflip.dev/agenda/pkg/runner/chat"
	"tableflip.dev/agenda/pkg/store"
)

func addChat(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "chat TEXT",
		Short: "Describe an event in plain language",
		Long: `Sends the text to the scheduling assistant and, once you confirm the
parsed draft, adds the event. Special phrases (export, import, clear,
status, help) run directly without the assistant.`,
		Example: `
agenda chat lunch with Sam tomorrow at noon
agenda chat "standup every morning" --yes
agenda chat status
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires some text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := chat.Chat{
				Text:        text,
				AutoConfirm: co.Yes,
				Store:       s,
				Client:      parse.New(parse.LoadConfig()),
			}
			err = r.Do(context.Background())
			return output.HandleError(humanize(err))
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
