package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ishaan812/linecounter/internal/counter"
	"github.com/ishaan812/linecounter/internal/prompt"
)

type lineResult struct {
	line string
	err  error
}

// Plain is a line-oriented front end for pipes and dumb terminals. End of
// input reads as a cancel, as does an Interrupt while a read is pending.
type Plain struct {
	printer
	in *bufio.Reader

	startOnce sync.Once
	lines     chan lineResult
	readErr   error

	mu      sync.Mutex
	pending chan struct{}
}

func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{
		printer: newPrinter(out),
		in:      bufio.NewReader(in),
		lines:   make(chan lineResult),
	}
}

func (p *Plain) Clear() {}

func (p *Plain) ReadLine(label string) (string, error) {
	return p.readLine(func() { fmt.Fprintf(p.out, "%s: ", label) })
}

func (p *Plain) ReadPath(label, base string) (string, error) {
	return p.ReadLine(label)
}

func (p *Plain) WaitKey() error {
	_, err := p.readLine(func() { p.warnColor.Fprintln(p.out, "Press Enter to continue.") })
	return err
}

func (p *Plain) Busy(text string) func() {
	p.Info(text)
	return func() {}
}

func (p *Plain) Report(root string, counts []counter.DirectoryCount, total int) {
	p.table(root, counts)
	p.total(total)
}

// Interrupt cancels the read in progress with prompt.ErrCanceled. It
// reports false when no read is waiting for input.
func (p *Plain) Interrupt() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return false
	}
	close(p.pending)
	p.pending = nil
	return true
}

// readInput feeds lines to readLine. A line typed after an interrupted read
// goes to the next read.
func (p *Plain) readInput() {
	for {
		line, err := p.in.ReadString('\n')
		p.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// readLine shows the prompt once the read can be interrupted and waits for
// the next line.
func (p *Plain) readLine(show func()) (string, error) {
	if p.readErr != nil {
		show()
		return p.finish(lineResult{err: p.readErr})
	}
	p.startOnce.Do(func() { go p.readInput() })

	interrupted := make(chan struct{})
	p.mu.Lock()
	p.pending = interrupted
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		if p.pending == interrupted {
			p.pending = nil
		}
		p.mu.Unlock()
	}()
	show()

	select {
	case r := <-p.lines:
		if r.err != nil {
			p.readErr = r.err
		}
		return p.finish(r)
	case <-interrupted:
		fmt.Fprintln(p.out)
		return "", prompt.ErrCanceled
	}
}

func (p *Plain) finish(r lineResult) (string, error) {
	if r.err != nil {
		if errors.Is(r.err, io.EOF) && r.line != "" {
			return strings.TrimRight(r.line, "\r\n"), nil
		}
		if errors.Is(r.err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", prompt.ErrCanceled
		}
		return "", fmt.Errorf("failed to read input: %w", r.err)
	}
	return strings.TrimRight(r.line, "\r\n"), nil
}
