package commands

import (
	"errors"
	"testing"

	"tableflip.dev/agenda/pkg/store"
)

func TestJSONFlagReachesSubcommands(t *testing.T) {
	cmd := New()
	if cmd.PersistentFlags().Lookup("json") == nil {
		t.Fatalf("--json must be registered on the root command")
	}

	sub, _, err := cmd.Find([]string{"get"})
	if err != nil {
		t.Fatalf("find get: %v", err)
	}
	if sub.InheritedFlags().Lookup("json") == nil {
		t.Fatalf("subcommands must inherit --json")
	}
}

func TestHumanizePersistenceError(t *testing.T) {
	err := humanize(&store.PersistenceError{Op: "write", Err: errors.New("disk full")})
	if err == nil {
		t.Fatalf("humanize must keep the failure")
	}
	if got := err.Error(); got != "your local data may not be saved (write failed)" {
		t.Fatalf("message = %q", got)
	}
}

func TestHumanizePassesOtherErrorsThrough(t *testing.T) {
	in := &store.NotFoundError{ID: "abc"}
	if err := humanize(in); err != in {
		t.Fatalf("non-persistence errors must pass unchanged, got %v", err)
	}
	if err := humanize(nil); err != nil {
		t.Fatalf("nil must stay nil")
	}
}
