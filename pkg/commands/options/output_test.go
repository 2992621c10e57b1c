package options

import (
	"errors"
	"testing"
)

func TestHandleErrorJSON(t *testing.T) {
	o := &OutputOptions{JSON: true}
	if err := o.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode reports the error itself, got %v", err)
	}
}

func TestHandleErrorPlain(t *testing.T) {
	o := &OutputOptions{}
	in := errors.New("boom")
	if err := o.HandleError(in); err != in {
		t.Fatalf("plain mode must return the error, got %v", err)
	}
	if err := o.HandleError(nil); err != nil {
		t.Fatalf("nil must stay nil")
	}
}
