// Package session drives one interactive line counting session: pick a
// root, filter its directories and extensions, count, report, repeat.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ishaan812/linecounter/internal/counter"
	"github.com/ishaan812/linecounter/internal/prompt"
	"github.com/ishaan812/linecounter/internal/selection"
)

// ErrCanceled is returned by Run when the user interrupts outside of root
// selection.
var ErrCanceled = prompt.ErrCanceled

// State is a step of the session loop.
type State int

const (
	StateRootSelect State = iota
	StateDirectoryScan
	StateDirectoryFilter
	StateExtensionScan
	StateExtensionFilter
	StateCount
	StateReport
	StateExit
)

var stateNames = map[State]string{
	StateRootSelect:      "root-select",
	StateDirectoryScan:   "directory-scan",
	StateDirectoryFilter: "directory-filter",
	StateExtensionScan:   "extension-scan",
	StateExtensionFilter: "extension-filter",
	StateCount:           "count",
	StateReport:          "report",
	StateExit:            "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	rootPrompt      = "Select the directory of your project (press Tab for navigation)"
	leavePrompt     = "Press Enter without input to leave"
	directoryPrompt = `Please enter the number of folder you wish to exclude (or include) (enter none to continue, "*" for exclude all)`
	extensionPrompt = `Enter the number or name of an extension you wish to include (enter none to continue, "*" for include all)`
)

// Options configures a Controller.
type Options struct {
	// HomeDir anchors relative root input and "~".
	HomeDir string
	// Progress reports every counted file through the UI.
	Progress bool
	// Logf receives debug output. Nil discards it.
	Logf func(format string, args ...interface{})
}

// Controller runs the session state machine against a UI.
type Controller struct {
	ui   prompt.UI
	opts Options
}

// pass holds everything built during one trip around the loop.
type pass struct {
	root       string
	dirs       []string
	included   []string
	extensions []string
	selected   []string
	counts     []counter.DirectoryCount
	countErr   error
}

func NewController(ui prompt.UI, opts Options) *Controller {
	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}
	return &Controller{ui: ui, opts: opts}
}

// Run loops until the user confirms an exit at root selection, which
// returns nil. An interrupt anywhere else returns ErrCanceled.
func (c *Controller) Run(ctx context.Context) error {
	state := StateRootSelect
	var p *pass

	for state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if state == StateRootSelect {
			p = &pass{}
		}

		next, err := c.step(state, p)
		if err != nil {
			return err
		}
		c.opts.Logf("session: %s -> %s", state, next)
		state = next
	}
	return nil
}

func (c *Controller) step(state State, p *pass) (State, error) {
	switch state {
	case StateRootSelect:
		return c.selectRoot(p)
	case StateDirectoryScan:
		return c.scanDirectories(p)
	case StateDirectoryFilter:
		return c.filterDirectories(p)
	case StateExtensionScan:
		return c.scanExtensions(p)
	case StateExtensionFilter:
		return c.filterExtensions(p)
	case StateCount:
		return c.count(p)
	case StateReport:
		return c.report(p)
	}
	return StateExit, fmt.Errorf("unknown session state %s", state)
}

func (c *Controller) selectRoot(p *pass) (State, error) {
	c.ui.Clear()
	c.ui.Title("Welcome to Line Counter.")

	input, err := c.ui.ReadPath(rootPrompt, c.opts.HomeDir)
	if errors.Is(err, prompt.ErrCanceled) {
		return c.confirmExit()
	}
	if err != nil {
		return StateExit, fmt.Errorf("failed to read root directory: %w", err)
	}

	root, err := ResolveRoot(c.opts.HomeDir, c.opts.HomeDir, input)
	if err != nil {
		c.opts.Logf("session: rejected root %q: %v", input, err)
		if errors.Is(err, ErrNotDirectory) {
			c.ui.Info(`This is not a directory.`)
		} else {
			c.ui.Info(`This "directory" does not exist.`)
		}
		return StateRootSelect, c.ui.WaitKey()
	}

	p.root = root
	return StateDirectoryScan, nil
}

func (c *Controller) confirmExit() (State, error) {
	c.ui.Error("Interrupted.")
	answer, err := c.ui.ReadLine(leavePrompt)
	if errors.Is(err, prompt.ErrCanceled) {
		return StateExit, nil
	}
	if err != nil {
		return StateExit, fmt.Errorf("failed to read exit confirmation: %w", err)
	}
	if answer == "" {
		return StateExit, nil
	}
	return StateRootSelect, nil
}

func (c *Controller) scanDirectories(p *pass) (State, error) {
	stop := c.ui.Busy("Searching for directories... Please be patient...")
	dirs, err := counter.ScanDirectories(p.root)
	stop()

	if err != nil {
		var permErr *counter.PermissionError
		if errors.As(err, &permErr) {
			c.ui.Error("Access to this directory was denied.")
		} else {
			c.ui.Error(fmt.Sprintf("Failed to scan this directory: %v", err))
		}
		c.opts.Logf("session: directory scan of %s failed: %v", p.root, err)
		return StateRootSelect, c.ui.WaitKey()
	}

	p.dirs = dirs
	c.ui.Info(fmt.Sprintf("%d folder(s) found.", len(dirs)))
	return StateDirectoryFilter, c.ui.WaitKey()
}

func (c *Controller) filterDirectories(p *pass) (State, error) {
	labels := make([]string, len(p.dirs))
	for i, dir := range p.dirs {
		labels[i] = counter.DisplayPath(p.root, dir)
	}

	f := selection.New(p.dirs, selection.Options{
		Mode:   selection.ModeExclude,
		Labels: labels,
		Noun:   "directory",
	})
	if err := selection.Run(c.ui, f, selection.Menu{Title: "Current directories:", Prompt: directoryPrompt}); err != nil {
		return StateExit, err
	}

	p.included = f.IncludedItems()
	if len(p.included) == 0 {
		c.ui.Info("You have excluded every directory.\nThere is nothing to search.")
		return StateRootSelect, c.ui.WaitKey()
	}
	return StateExtensionScan, nil
}

func (c *Controller) scanExtensions(p *pass) (State, error) {
	stop := c.ui.Busy("Searching for extensions... Please be patient...")
	exts, err := counter.ScanExtensions(p.included)
	stop()

	if err != nil {
		c.ui.Error(fmt.Sprintf("Failed to scan for extensions: %v", err))
		c.opts.Logf("session: extension scan failed: %v", err)
		return StateRootSelect, c.ui.WaitKey()
	}

	p.extensions = exts
	c.ui.Info(fmt.Sprintf("%d extension(s) found.", len(exts)))
	return StateExtensionFilter, c.ui.WaitKey()
}

func (c *Controller) filterExtensions(p *pass) (State, error) {
	f := selection.New(p.extensions, selection.Options{
		Mode:        selection.ModeInclude,
		MatchLabels: true,
		Noun:        "extension",
	})
	if err := selection.Run(c.ui, f, selection.Menu{Title: "Extensions:", Prompt: extensionPrompt}); err != nil {
		return StateExit, err
	}

	p.selected = f.IncludedItems()
	if len(p.selected) == 0 {
		c.ui.Info("You have excluded every extension.\nThere is nothing to search.")
		return StateRootSelect, c.ui.WaitKey()
	}
	return StateCount, nil
}

func (c *Controller) count(p *pass) (State, error) {
	c.ui.Clear()
	c.ui.Info("Checking files...")

	var progress counter.Progress
	if c.opts.Progress {
		progress = c.ui.Progress
	}

	p.counts, p.countErr = counter.Aggregate(p.included, p.selected, progress)
	if p.countErr != nil {
		c.opts.Logf("session: count aborted: %v", p.countErr)
	}
	return StateReport, nil
}

func (c *Controller) report(p *pass) (State, error) {
	if p.countErr != nil {
		var decodeErr *counter.DecodeError
		if errors.As(p.countErr, &decodeErr) {
			c.ui.Error(fmt.Sprintf("An error occurred while decoding a file.\nException details: %v", p.countErr))
		} else {
			c.ui.Error(fmt.Sprintf("An error occurred while counting lines.\nException details: %v", p.countErr))
		}
		return StateRootSelect, c.ui.WaitKey()
	}

	c.ui.Report(p.root, p.counts, counter.Total(p.counts))
	return StateRootSelect, c.ui.WaitKey()
}
