package builder

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/mosaic/internal/adapters/template"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/domain/config"
)

var library = []*domain.ComponentDefinition{
	{ID: "erc20", Name: "ERC20 Token", Template: "string public name;"},
	{ID: "access", Name: "Access Control", Template: "address public owner;"},
	{ID: "nft", Name: "NFT Contract", Template: "uint256 public nextTokenId;"},
}

var assembler = template.NewSourceAssemblerAdapter(&config.RuntimeConfig{
	Assembler: config.AssemblerConfig{Boilerplate: true},
})

func newModel(selected ...*domain.ComponentDefinition) Model {
	return New(library, domain.NewSelection(selected...), assembler)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestBuilderEditing(t *testing.T) {
	tests := []struct {
		name     string
		selected []*domain.ComponentDefinition
		keys     []string
		wantIDs  []string
		modified bool
	}{
		{
			name:     "append from the library",
			keys:     []string{"enter", "j", "j", "a", "enter"},
			wantIDs:  []string{"erc20", "nft", "nft"},
			modified: true,
		},
		{
			name:     "cursor stops at the last entry",
			keys:     []string{"j", "j", "j", "j", "enter"},
			wantIDs:  []string{"nft"},
			modified: true,
		},
		{
			name:     "remove from the selection",
			selected: library,
			keys:     []string{"tab", "j", "d"},
			wantIDs:  []string{"erc20", "nft"},
			modified: true,
		},
		{
			name:     "remove is ignored in the library pane",
			selected: library,
			keys:     []string{"d"},
			wantIDs:  []string{"erc20", "access", "nft"},
		},
		{
			name:     "move down twice",
			selected: library,
			keys:     []string{"tab", "J", "J"},
			wantIDs:  []string{"access", "nft", "erc20"},
			modified: true,
		},
		{
			name:     "move down at the end does nothing",
			selected: library,
			keys:     []string{"tab", "j", "j", "j", "J"},
			wantIDs:  []string{"erc20", "access", "nft"},
		},
		{
			name:     "move up",
			selected: library,
			keys:     []string{"tab", "j", "j", "K"},
			wantIDs:  []string{"erc20", "nft", "access"},
			modified: true,
		},
		{
			name:     "move up at the top does nothing",
			selected: library,
			keys:     []string{"tab", "K"},
			wantIDs:  []string{"erc20", "access", "nft"},
		},
		{
			name:     "clear",
			selected: library,
			keys:     []string{"c"},
			wantIDs:  []string{},
			modified: true,
		},
		{
			name:    "clear empty",
			keys:    []string{"c"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newModel(tt.selected...), tt.keys...)
			assert.Equal(t, tt.wantIDs, m.Selection().IDs())
			assert.Equal(t, tt.modified, m.Modified())

			// The preview always reflects the edited selection
			assert.Equal(t, assembler.Assemble(m.Selection().Entries()), m.Source())
		})
	}
}

func TestBuilderRemoveLastKeepsCursorInRange(t *testing.T) {
	m := press(newModel(library...), "tab", "j", "j", "d", "d", "d")
	assert.Empty(t, m.Selection().IDs())

	// Nothing left to remove
	m = press(m, "d")
	assert.True(t, m.Selection().IsEmpty())
}

func TestBuilderQuit(t *testing.T) {
	tests := []struct {
		key   string
		saved bool
	}{
		{key: "q"},
		{key: "esc"},
		{key: "w", saved: true},
		{key: "ctrl+s", saved: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			next, cmd := newModel().Update(key(tt.key))
			m := next.(Model)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Equal(t, tt.saved, m.Saved())
			assert.Empty(t, m.View())
		})
	}
}

func TestBuilderView(t *testing.T) {
	next, _ := newModel(library[1]).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()

	assert.Contains(t, view, "Component Library")
	for _, def := range library {
		assert.Contains(t, view, def.Name)
	}
	assert.Contains(t, view, "pragma solidity ^0.8.19;")
	assert.True(t, strings.Contains(view, "address public owner;"))
	assert.False(t, strings.Contains(view, "uint256 public nextTokenId;"))
}
