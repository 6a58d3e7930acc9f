package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/ishaan812/linecounter/internal/counter"
	"github.com/ishaan812/linecounter/internal/prompt"
)

const (
	lineHelp = "enter to submit • ctrl+c to cancel"
	pathHelp = "tab to complete • enter to submit • ctrl+c to cancel"
)

// Console is the full terminal front end: bubbletea prompts with path
// completion, raw-mode keypresses, a spinner and a rendered report.
type Console struct {
	printer
	in *os.File
}

func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{printer: newPrinter(out), in: in}
}

func (c *Console) Clear() {
	fmt.Fprint(c.out, "\033[H\033[2J")
}

func (c *Console) ReadLine(label string) (string, error) {
	return runLinePrompt(c.in, c.out, label, lineHelp, "")
}

func (c *Console) ReadPath(label, base string) (string, error) {
	return runLinePrompt(c.in, c.out, label, pathHelp, base)
}

func (c *Console) WaitKey() error {
	c.warnColor.Fprintln(c.out, "Press any key to continue.")
	return readKey(c.in)
}

func (c *Console) Busy(text string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(c.out))
	s.Suffix = " " + text
	s.FinalMSG = text + "\n"
	s.Color("cyan")
	s.Start()
	return s.Stop
}

func (c *Console) Report(root string, counts []counter.DirectoryCount, total int) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	rendered, err := renderMarkdown(reportMarkdown(root, counts, total), width)
	if err != nil {
		c.table(root, counts)
	} else {
		fmt.Fprint(c.out, rendered)
	}
	c.total(total)
}

// readKey waits for one keypress in raw mode. Ctrl+C reports a cancel.
func readKey(f *os.File) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to read keypress: %w", err)
	}
	defer term.Restore(fd, state)

	// large enough to swallow an escape sequence in one read
	buf := make([]byte, 8)
	n, err := f.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return prompt.ErrCanceled
		}
		return fmt.Errorf("failed to read keypress: %w", err)
	}
	if n > 0 && buf[0] == 0x03 {
		return prompt.ErrCanceled
	}
	return nil
}
