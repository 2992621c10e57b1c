// Package clear provides the runner for destroying every event.
package clear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type Clear struct {
	// Confirmed skips the interactive prompt (--yes).
	Confirmed bool

	// In is the confirmation input, os.Stdin unless a test substitutes it.
	In io.Reader

	Store *store.Store
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}

	pp := printers.PrettyPrint{}
	if !n.Confirmed {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Printf("Delete all %d events? This cannot be undone. [y/N] ", n.Store.Len())
		line, _ := bufio.NewReader(in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
		default:
			pp.Say("Okay, nothing was cleared.")
			return nil
		}
	}

	if err := n.Store.Clear(); err != nil {
		return err
	}
	pp.Say("All events cleared.")
	return nil
}
