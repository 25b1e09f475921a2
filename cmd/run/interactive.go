package main

import (
	"archive/zip"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-archive/engine"
	"github.com/wippyai/wasm-archive/loader"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseModel struct {
	err           error
	eng           *engine.WazeroLoader
	ld            *loader.Loader
	result        *loadResult
	archivePath   string
	entries       []string
	filtered      []string
	filter        textinput.Model
	selected      int
	state         modelState
	opportunistic bool
}

type loadResult struct {
	location string
	exports  []string
	symbols  bool
}

type modelState int

const (
	stateBrowse modelState = iota
	stateShowResult
)

func newBrowseModel(archivePath string, opportunistic bool) *browseModel {
	filter := textinput.New()
	filter.Placeholder = "filter entries"
	filter.Prompt = "/ "
	filter.Width = 40
	filter.Focus()

	return &browseModel{
		archivePath:   archivePath,
		opportunistic: opportunistic,
		filter:        filter,
		state:         stateBrowse,
	}
}

type entriesMsg struct {
	err     error
	eng     *engine.WazeroLoader
	ld      *loader.Loader
	entries []string
}

type loadedMsg struct {
	err    error
	result *loadResult
}

func (m *browseModel) Init() tea.Cmd {
	return m.openArchive
}

func (m *browseModel) openArchive() tea.Msg {
	ctx := context.Background()

	r, err := zip.OpenReader(m.archivePath)
	if err != nil {
		return entriesMsg{err: err}
	}
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		if strings.HasSuffix(strings.ToLower(f.Name), loader.ModuleExt) {
			entries = append(entries, f.Name)
		}
	}

	eng, err := engine.NewWazeroLoader(ctx)
	if err != nil {
		return entriesMsg{err: err}
	}

	var opts []loader.Option
	if m.opportunistic {
		opts = append(opts, loader.WithOpportunisticSymbols())
	}
	ld, err := loader.New(eng, opts...)
	if err != nil {
		eng.Close(ctx)
		return entriesMsg{err: err}
	}

	return entriesMsg{entries: entries, eng: eng, ld: ld}
}

func (m *browseModel) loadSelected() tea.Msg {
	ctx := context.Background()

	if m.selected >= len(m.filtered) {
		return loadedMsg{err: fmt.Errorf("no entry selected")}
	}

	mod, err := m.ld.LoadFromArchive(ctx, m.archivePath, m.filtered[m.selected], false)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer mod.Close(ctx)

	return loadedMsg{result: &loadResult{
		location: mod.Location(),
		exports:  mod.Exports(),
		symbols:  mod.HasSymbols(),
	}}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.eng != nil {
				m.eng.Close(context.Background())
			}
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.filtered) > 0 {
					return m, m.loadSelected
				}
			case stateShowResult:
				m.state = stateBrowse
				m.result = nil
				m.err = nil
			}
			return m, nil
		}

	case entriesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.entries = msg.entries
		m.eng = msg.eng
		m.ld = msg.ld
		m.refilter()
		return m, nil

	case loadedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateBrowse {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) refilter() {
	needle := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for _, e := range m.entries {
		if needle == "" || strings.Contains(strings.ToLower(e), needle) {
			m.filtered = append(m.filtered, e)
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = 0
	}
}

func (m *browseModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Archive Browser"))
	b.WriteString(" ")
	b.WriteString(m.archivePath)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")

		if len(m.filtered) == 0 {
			b.WriteString(helpStyle.Render("no matching module entries"))
			b.WriteString("\n")
		}
		for i, e := range m.filtered {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e))
			} else {
				b.WriteString("  " + entryStyle.Render(e))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter load • esc quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render("Loaded " + m.result.location))
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("Symbols: %v\n", m.result.symbols))
			b.WriteString(fmt.Sprintf("Exports: %d\n", len(m.result.exports)))
			for _, name := range m.result.exports {
				b.WriteString("  " + entryStyle.Render(name) + "\n")
			}
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • esc quit"))
	}

	return b.String()
}

func runInteractive(archivePath string, opportunistic bool) error {
	p := tea.NewProgram(newBrowseModel(archivePath, opportunistic), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
