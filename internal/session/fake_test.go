package session

import (
	"fmt"
	"strings"

	"github.com/ishaan812/linecounter/internal/counter"
	"github.com/ishaan812/linecounter/internal/prompt"
)

// fakeUI replays scripted input and records everything shown. Once the
// script runs out every read reports a cancel.
type fakeUI struct {
	inputs []string

	titles    []string
	items     []string
	infos     []string
	errors    []string
	warnings  []string
	progress  []string
	busy      []string
	totals    []int
	reports   [][]counter.DirectoryCount
	keys      int
	pathBases []string
}

func script(inputs ...string) *fakeUI {
	return &fakeUI{inputs: inputs}
}

func (f *fakeUI) next() (string, error) {
	if len(f.inputs) == 0 {
		return "", prompt.ErrCanceled
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	if in == "^C" {
		return "", prompt.ErrCanceled
	}
	return in, nil
}

func (f *fakeUI) Clear()            {}
func (f *fakeUI) Title(text string) { f.titles = append(f.titles, text) }

func (f *fakeUI) Item(n int, label string, included bool) {
	mark := ""
	if !included {
		mark = " (excluded)"
	}
	f.items = append(f.items, fmt.Sprintf("%d. %s%s", n, label, mark))
}

func (f *fakeUI) Warn(text string)    { f.warnings = append(f.warnings, text) }
func (f *fakeUI) Info(text string)    { f.infos = append(f.infos, text) }
func (f *fakeUI) Error(text string)   { f.errors = append(f.errors, text) }

func (f *fakeUI) ReadLine(label string) (string, error) { return f.next() }

func (f *fakeUI) ReadPath(label, base string) (string, error) {
	f.pathBases = append(f.pathBases, base)
	return f.next()
}

func (f *fakeUI) WaitKey() error {
	f.keys++
	return nil
}

func (f *fakeUI) Progress(path string, lines int) {
	f.progress = append(f.progress, fmt.Sprintf("%s: %d", path, lines))
}

func (f *fakeUI) Busy(text string) func() {
	f.busy = append(f.busy, text)
	return func() {}
}

func (f *fakeUI) Report(root string, counts []counter.DirectoryCount, total int) {
	f.reports = append(f.reports, counts)
	f.totals = append(f.totals, total)
}

func (f *fakeUI) errorText() string { return strings.Join(f.errors, "\n") }
func (f *fakeUI) infoText() string  { return strings.Join(f.infos, "\n") }
