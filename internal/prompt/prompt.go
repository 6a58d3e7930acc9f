// Package prompt defines the interactive capability the line counter core
// talks to. Terminal, plain stdin/stdout and scripted test implementations
// all satisfy the same interfaces.
package prompt

import (
	"errors"

	"github.com/ishaan812/linecounter/internal/counter"
)

// ErrCanceled is returned by input methods when the user interrupts them.
var ErrCanceled = errors.New("input canceled")

// Lister renders a numbered list and reads the user's choice.
type Lister interface {
	Clear()
	Title(text string)
	// Item renders list entry n (1-based) and whether it is currently included.
	Item(n int, label string, included bool)
	Warn(text string)
	ReadLine(label string) (string, error)
	// WaitKey blocks until the user acknowledges with a single keypress.
	WaitKey() error
}

// UI is everything a session needs from its front end.
type UI interface {
	Lister

	// ReadPath reads a path, completing relative to base.
	ReadPath(label, base string) (string, error)
	Info(text string)
	Error(text string)
	Progress(path string, lines int)
	// Busy shows an activity indicator until the returned stop func runs.
	Busy(text string) (stop func())
	Report(root string, counts []counter.DirectoryCount, total int)
}
