package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/actiongen/rewrite"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entry struct {
	file string
	fn   rewrite.Function
}

type modelState int

const (
	stateSelect modelState = iota
	statePreview
)

type interactiveModel struct {
	err      error
	status   string
	entries  []entry
	view     viewport.Model
	selected int
	width    int
	height   int
	state    modelState
	ready    bool
}

func newInteractiveModel(files []string) (*interactiveModel, error) {
	var entries []entry
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		funcs, err := rewrite.Marked(file, src)
		if err != nil {
			return nil, err
		}
		for _, fn := range funcs {
			entries = append(entries, entry{file: file, fn: fn})
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no marked functions found")
	}
	return &interactiveModel{entries: entries}, nil
}

func runInteractive(files []string) error {
	m, err := newInteractiveModel(files)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view = viewport.New(msg.Width, msg.Height-4)
		m.ready = true
		if m.state == statePreview {
			m.view.SetContent(m.previewContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == statePreview {
				m.state = stateSelect
				m.status = ""
			}
			return m, nil

		case "up", "k":
			if m.state == stateSelect && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.state == stateSelect && m.selected < len(m.entries)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			if m.state == stateSelect {
				m.state = statePreview
				m.status = ""
				m.err = nil
				if m.ready {
					m.view.SetContent(m.previewContent())
					m.view.GotoTop()
				}
			}
			return m, nil

		case "w":
			if m.state == statePreview {
				m.writeSelected()
			}
			return m, nil
		}
	}

	if m.state == statePreview && m.ready {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

// writeSelected rewrites the selected entry's whole file in place.
func (m *interactiveModel) writeSelected() {
	e := m.entries[m.selected]
	src, err := os.ReadFile(e.file)
	if err != nil {
		m.err = err
		return
	}
	res, err := rewrite.Rewrite(e.file, src)
	if err != nil {
		m.err = err
		return
	}
	if err := os.WriteFile(e.file, res.Output, 0o644); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("wrote %s (%d function(s))", e.file, len(res.Functions))
}

func (m *interactiveModel) previewContent() string {
	e := m.entries[m.selected]
	var b strings.Builder
	b.WriteString(sectionStyle.Render("── original ──"))
	b.WriteString("\n\n")
	b.WriteString(e.fn.Original)
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("── rewritten ──"))
	b.WriteString("\n\n")
	b.WriteString(e.fn.Wrapped)
	b.WriteString("\n")
	return b.String()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateSelect:
		b.WriteString(titleStyle.Render("actiongen — marked functions"))
		b.WriteString("\n\n")
		for i, e := range m.entries {
			line := fmt.Sprintf("%s  %s",
				funcStyle.Render(e.fn.Name),
				fileStyle.Render(fmt.Sprintf("%s:%d", e.file, e.fn.Line)))
			if i == m.selected {
				line = selectedStyle.Render("> " + e.fn.Name + "  " + fmt.Sprintf("%s:%d", e.file, e.fn.Line))
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select · enter preview · q quit"))

	case statePreview:
		e := m.entries[m.selected]
		b.WriteString(titleStyle.Render("actiongen — " + e.fn.Name))
		b.WriteString("\n")
		if m.ready {
			b.WriteString(m.view.View())
		}
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		} else if m.status != "" {
			b.WriteString(statusStyle.Render(m.status))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓ scroll · w write file · esc back · q quit"))
	}

	return b.String()
}
