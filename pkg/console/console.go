// Package console renders hook output on the terminal, in the style of
// Composer's <info>, <comment> and <error> tags.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/square360/pantheon-workflows/pkg/hooks"
	"github.com/square360/pantheon-workflows/pkg/style"
)

// IO writes leveled messages. Errors always go to Err; Info and Comment are
// dropped when Quiet is set.
type IO struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

var _ hooks.IO = (*IO)(nil)

// New returns an IO on stdout and stderr.
func New(quiet bool) *IO {
	return &IO{Out: os.Stdout, Err: os.Stderr, Quiet: quiet}
}

func (c *IO) Info(msg string) {
	if c.Quiet {
		return
	}
	fmt.Fprintln(c.Out, style.Green(msg))
}

func (c *IO) Comment(msg string) {
	if c.Quiet {
		return
	}
	fmt.Fprintln(c.Out, style.Yellow(msg))
}

func (c *IO) Error(msg string) {
	fmt.Fprintln(c.Err, style.Red(msg))
}

// Event is a lifecycle event raised from the command line.
type Event struct {
	io        hooks.IO
	vendorDir string
}

var _ hooks.Event = Event{}

// NewEvent returns an Event reporting to out for the given vendor dir.
func NewEvent(out hooks.IO, vendorDir string) Event {
	return Event{io: out, vendorDir: vendorDir}
}

func (e Event) IO() hooks.IO      { return e.io }
func (e Event) VendorDir() string { return e.vendorDir }
