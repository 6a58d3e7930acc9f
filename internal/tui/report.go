package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/ishaan812/linecounter/internal/counter"
)

type reportRow struct {
	label string
	files int
	lines int
}

// reportRows keeps the directories that had at least one counted file.
func reportRows(root string, counts []counter.DirectoryCount) []reportRow {
	var rows []reportRow
	for _, c := range counts {
		if c.Files == 0 {
			continue
		}
		rows = append(rows, reportRow{
			label: counter.DisplayPath(root, c.Path),
			files: c.Files,
			lines: c.Lines,
		})
	}
	return rows
}

func sumFiles(rows []reportRow) int {
	n := 0
	for _, r := range rows {
		n += r.files
	}
	return n
}

// reportMarkdown lays the breakdown out as a Markdown table.
func reportMarkdown(root string, counts []counter.DirectoryCount, total int) string {
	rows := reportRows(root, counts)

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", escapeCell(filepath.Base(root)))
	if len(rows) == 0 {
		b.WriteString("No matching files.\n")
		return b.String()
	}

	b.WriteString("| Directory | Files | Lines |\n")
	b.WriteString("|:---|---:|---:|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", escapeCell(r.label), r.files, r.lines)
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | **%d** |\n", sumFiles(rows), total)
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
