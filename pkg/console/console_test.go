package console

import (
	"bytes"
	"testing"

	"github.com/square360/pantheon-workflows/pkg/style"
)

func TestIOLevels(t *testing.T) {
	style.SetNoColor(true)

	var out, errOut bytes.Buffer
	c := &IO{Out: &out, Err: &errOut}

	c.Info("installed")
	c.Comment("preserved")
	c.Error("failed")

	if got, want := out.String(), "installed\npreserved\n"; got != want {
		t.Errorf("Expected stdout %q, got %q", want, got)
	}
	if got, want := errOut.String(), "failed\n"; got != want {
		t.Errorf("Expected stderr %q, got %q", want, got)
	}
}

func TestIOQuiet(t *testing.T) {
	style.SetNoColor(true)

	var out, errOut bytes.Buffer
	c := &IO{Out: &out, Err: &errOut, Quiet: true}

	c.Info("installed")
	c.Comment("preserved")
	c.Error("failed")

	if out.Len() != 0 {
		t.Errorf("Expected no stdout in quiet mode, got %q", out.String())
	}
	if errOut.String() != "failed\n" {
		t.Errorf("Errors must still be written in quiet mode, got %q", errOut.String())
	}
}

func TestEvent(t *testing.T) {
	c := New(false)
	ev := NewEvent(c, "/project/vendor")

	if ev.VendorDir() != "/project/vendor" {
		t.Errorf("Expected vendor dir '/project/vendor', got '%s'", ev.VendorDir())
	}
	if ev.IO() != c {
		t.Error("Expected event to carry the console IO")
	}
}
