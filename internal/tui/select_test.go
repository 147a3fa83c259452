package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpgen/mcpgen/internal/pack"
)

func testPacks() []pack.Pack {
	return []pack.Pack{
		{Name: "background", Description: "Background research agents"},
		{Name: "coding", Description: "Coding assistants"},
	}
}

func TestModel_EnterSelectsPack(t *testing.T) {
	t.Parallel()

	m := newModel(testPacks())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	require.NotNil(t, m.choice)
	assert.Equal(t, "background", m.choice.Name)
}

func TestModel_NavigationMovesSelection(t *testing.T) {
	t.Parallel()

	m := newModel(testPacks())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)

	require.NotNil(t, m.choice)
	assert.Equal(t, "coding", m.choice.Name)
}

func TestModel_EscapeLeavesNoChoice(t *testing.T) {
	t.Parallel()

	m := newModel(testPacks())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)

	assert.Nil(t, m.choice)
}
