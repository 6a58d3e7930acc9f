// Package selection implements the include/exclude toggle list used for
// directories and extensions.
package selection

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects what the marked items of a Filter mean.
type Mode int

const (
	// ModeExclude marks excluded items. Everything starts included and "*"
	// excludes everything.
	ModeExclude Mode = iota
	// ModeInclude marks included items. Everything starts excluded and "*"
	// includes everything.
	ModeInclude
)

// Options configures a Filter.
type Options struct {
	Mode Mode
	// Labels are shown instead of the items when set. Must match items in length.
	Labels []string
	// MatchLabels accepts a label (case-insensitive) as input besides an index.
	MatchLabels bool
	// Noun names one item in validation messages.
	Noun string
}

// Filter tracks one membership set over a fixed ordered list of items.
// Membership is the only thing that changes; the list itself never does.
type Filter struct {
	items  []string
	labels []string
	marked []bool
	opts   Options
}

// New returns a Filter with nothing marked.
func New(items []string, opts Options) *Filter {
	labels := opts.Labels
	if len(labels) != len(items) {
		labels = items
	}
	if opts.Noun == "" {
		opts.Noun = "item"
	}
	return &Filter{
		items:  items,
		labels: labels,
		marked: make([]bool, len(items)),
		opts:   opts,
	}
}

func (f *Filter) Len() int { return len(f.items) }

func (f *Filter) Label(i int) string { return f.labels[i] }

// Included reports whether item i (0-based) is currently included.
func (f *Filter) Included(i int) bool {
	if f.opts.Mode == ModeInclude {
		return f.marked[i]
	}
	return !f.marked[i]
}

// Toggle flips the membership of item n (1-based).
func (f *Filter) Toggle(n int) error {
	if n < 1 || n > len(f.items) {
		return &InputError{Kind: OutOfRange, Input: strconv.Itoa(n), Noun: f.opts.Noun}
	}
	f.marked[n-1] = !f.marked[n-1]
	return nil
}

// MarkAll puts every item in the set: all excluded in ModeExclude, all
// included in ModeInclude.
func (f *Filter) MarkAll() {
	for i := range f.marked {
		f.marked[i] = true
	}
}

// Marked returns the items in the set, in list order.
func (f *Filter) Marked() []string {
	var out []string
	for i, m := range f.marked {
		if m {
			out = append(out, f.items[i])
		}
	}
	return out
}

// IncludedItems returns the included items, in list order.
func (f *Filter) IncludedItems() []string {
	var out []string
	for i := range f.items {
		if f.Included(i) {
			out = append(out, f.items[i])
		}
	}
	return out
}

// Apply handles one line of user input. Empty input finishes the filter.
func (f *Filter) Apply(input string) (done bool, err error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return true, nil
	case input == "*":
		f.MarkAll()
		return false, nil
	}

	if isDigits(input) {
		n, convErr := strconv.Atoi(input)
		if convErr != nil {
			return false, &InputError{Kind: OutOfRange, Input: input, Noun: f.opts.Noun}
		}
		return false, f.Toggle(n)
	}

	if f.opts.MatchLabels {
		for i, label := range f.labels {
			if strings.EqualFold(label, input) {
				return false, f.Toggle(i + 1)
			}
		}
		return false, &InputError{Kind: UnknownLabel, Input: input, Noun: f.opts.Noun}
	}

	return false, &InputError{Kind: NotANumber, Input: input, Noun: f.opts.Noun}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// InputErrorKind classifies a rejected selection.
type InputErrorKind int

const (
	NotANumber InputErrorKind = iota
	OutOfRange
	UnknownLabel
)

// InputError is a selection the filter could not apply.
type InputError struct {
	Kind  InputErrorKind
	Input string
	Noun  string
}

func (e *InputError) Error() string {
	switch e.Kind {
	case OutOfRange:
		return fmt.Sprintf("Please enter a valid number of a %s listed above.", e.Noun)
	case UnknownLabel:
		return fmt.Sprintf("Please enter the number or name of a %s that is in the list.", e.Noun)
	default:
		return "Please enter a number."
	}
}
