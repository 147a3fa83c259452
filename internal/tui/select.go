// Package tui provides the interactive pack selector.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcpgen/mcpgen/internal/pack"
)

// ErrCancelled is returned when the user leaves the selector without
// choosing a pack.
var ErrCancelled = errors.New("selection cancelled")

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// packItem wraps a Pack for list display.
type packItem struct {
	p pack.Pack
}

func (i packItem) Title() string       { return i.p.Name }
func (i packItem) Description() string { return i.p.Description }
func (i packItem) FilterValue() string { return i.p.Name }

type model struct {
	list   list.Model
	choice *pack.Pack
}

func newModel(packs []pack.Pack) model {
	items := make([]list.Item, len(packs))
	for i, p := range packs {
		items[i] = packItem{p: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Select an MCP configuration"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Keys fall through to the list while the filter input is open.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(packItem); ok {
				chosen := item.p
				m.choice = &chosen
				return m, tea.Quit
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// SelectPack runs the interactive selector and returns the chosen pack.
func SelectPack(packs []pack.Pack) (pack.Pack, error) {
	final, err := tea.NewProgram(newModel(packs)).Run()
	if err != nil {
		return pack.Pack{}, fmt.Errorf("run selector: %w", err)
	}

	m := final.(model)
	if m.choice == nil {
		return pack.Pack{}, ErrCancelled
	}
	return *m.choice, nil
}
