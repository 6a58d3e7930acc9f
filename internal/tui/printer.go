package tui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"github.com/ishaan812/linecounter/internal/counter"
)

// printer renders status lines. Console and Plain share it.
type printer struct {
	out          io.Writer
	titleColor   *color.Color
	successColor *color.Color
	errorColor   *color.Color
	warnColor    *color.Color
	dimColor     *color.Color
}

func newPrinter(out io.Writer) printer {
	return printer{
		out:          out,
		titleColor:   color.New(color.FgHiCyan, color.Bold),
		successColor: color.New(color.FgHiGreen),
		errorColor:   color.New(color.FgHiRed),
		warnColor:    color.New(color.FgHiYellow),
		dimColor:     color.New(color.FgHiBlack),
	}
}

// icon prefixes a promptui status icon unless color is off.
func icon(s string) string {
	if color.NoColor {
		return ""
	}
	return s + " "
}

func (p printer) Title(text string) {
	p.titleColor.Fprintln(p.out, text)
}

func (p printer) Item(n int, label string, included bool) {
	fmt.Fprintf(p.out, "%d. %s", n, label)
	if !included {
		p.warnColor.Fprint(p.out, " (excluded)")
	}
	fmt.Fprintln(p.out)
}

func (p printer) Info(text string) {
	fmt.Fprintln(p.out, text)
}

func (p printer) Warn(text string) {
	p.warnColor.Fprintln(p.out, icon(promptui.IconWarn)+text)
}

func (p printer) Error(text string) {
	fmt.Fprintln(p.out)
	p.errorColor.Fprintln(p.out, icon(promptui.IconBad)+text)
}

func (p printer) Progress(path string, lines int) {
	fmt.Fprintf(p.out, "%s: ", path)
	p.successColor.Fprintln(p.out, lines)
}

func (p printer) total(total int) {
	fmt.Fprintln(p.out)
	p.successColor.Fprintf(p.out, "%sThe total line length is %d.\n", icon(promptui.IconGood), total)
}

// table prints the per-directory breakdown without any markup.
func (p printer) table(root string, counts []counter.DirectoryCount) {
	rows := reportRows(root, counts)
	if len(rows) == 0 {
		return
	}

	width := len("Directory")
	for _, r := range rows {
		width = max(width, len(r.label))
	}

	fmt.Fprintln(p.out)
	p.dimColor.Fprintf(p.out, "%-*s %8s %10s\n", width, "Directory", "Files", "Lines")
	for _, r := range rows {
		fmt.Fprintf(p.out, "%-*s %8d %10d\n", width, r.label, r.files, r.lines)
	}
	p.dimColor.Fprintf(p.out, "(%d files in %s)\n", sumFiles(rows), filepath.Base(root))
}
