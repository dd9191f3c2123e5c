package cli

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
)

// consoleCamera adapts the terminal to the scan.Camera contract. Decode
// events are lines the operator types; Start and Stop only toggle whether
// the scanner banner shows, the session itself decides which lines count.
type consoleCamera struct {
	out    io.Writer
	active atomic.Bool
}

func newConsoleCamera(out io.Writer) *consoleCamera {
	return &consoleCamera{out: out}
}

// RequestPermission always succeeds: the terminal needs no grant.
func (c *consoleCamera) RequestPermission(ctx context.Context) error {
	return nil
}

func (c *consoleCamera) Start() error {
	if c.active.CompareAndSwap(false, true) {
		fmt.Fprintln(c.out, "[scanner on]")
	}
	return nil
}

func (c *consoleCamera) Stop() {
	if c.active.CompareAndSwap(true, false) {
		fmt.Fprintln(c.out, "[scanner off]")
	}
}
