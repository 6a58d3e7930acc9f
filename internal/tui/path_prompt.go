package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ishaan812/linecounter/internal/prompt"
)

const maxSuggestions = 64

type linePromptModel struct {
	title    string
	help     string
	input    textinput.Model
	base     string
	value    string
	done     bool
	canceled bool
}

// newLinePromptModel builds a one-line prompt. A non-empty base turns on
// directory completion relative to it.
func newLinePromptModel(title, help, base string) linePromptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 70
	if base != "" {
		ti.Placeholder = "path/to/project"
		ti.ShowSuggestions = true
		ti.SetSuggestions(directorySuggestions(base, ""))
	}

	return linePromptModel{
		title: title,
		help:  help,
		input: ti,
		base:  base,
	}
}

func (m linePromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m linePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.canceled = true
			m.done = true
			return m, tea.Quit
		case "enter":
			m.value = strings.TrimSpace(m.input.Value())
			m.done = true
			return m, tea.Quit
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.base != "" && m.input.Value() != before {
		m.input.SetSuggestions(directorySuggestions(m.base, m.input.Value()))
	}
	return m, cmd
}

func (m linePromptModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help))
	b.WriteString("\n")
	return b.String()
}

// runLinePrompt shows an interactive text input on in/out and returns the
// entered line.
func runLinePrompt(in io.Reader, out io.Writer, title, help, base string) (string, error) {
	p := tea.NewProgram(newLinePromptModel(title, help, base), tea.WithInput(in), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	result := finalModel.(linePromptModel)
	if result.canceled {
		return "", prompt.ErrCanceled
	}
	return result.value, nil
}

// directorySuggestions completes the last segment of value to the
// directories that exist there. Relative values resolve against base.
func directorySuggestions(base, value string) []string {
	sep := string(filepath.Separator)

	dirPart, prefix := "", value
	if idx := strings.LastIndexAny(value, "/"+sep); idx >= 0 {
		dirPart, prefix = value[:idx+1], value[idx+1:]
	}

	listDir := dirPart
	if listDir == "" {
		listDir = base
	} else if !filepath.IsAbs(listDir) {
		listDir = filepath.Join(base, listDir)
	}

	entries, err := os.ReadDir(listDir)
	if err != nil {
		return nil
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasPrefix(name, prefix) {
			continue
		}
		// hidden directories only when asked for
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		out = append(out, dirPart+name+sep)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
