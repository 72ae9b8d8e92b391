// Package builder implements the interactive contract builder screen.
package builder

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

type pane int

const (
	libraryPane pane = iota
	selectionPane
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeStyle   = paneStyle.BorderForeground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	previewStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the bubbletea model of the builder screen. The library is fixed,
// the selection is edited in memory and the preview follows every edit.
type Model struct {
	library   []*domain.ComponentDefinition
	selection *domain.Selection
	assembler usecase.SourceAssembler

	focus     pane
	libCursor int
	selCursor int
	source    string
	modified  bool
	saved     bool
	quitting  bool
	width     int
	height    int
}

// New creates the builder model
func New(library []*domain.ComponentDefinition, selection *domain.Selection, assembler usecase.SourceAssembler) Model {
	m := Model{
		library:   library,
		selection: selection,
		assembler: assembler,
	}
	m.refresh()
	return m
}

// Init is the initial command for bubbletea
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the edited selection
func (m Model) Selection() *domain.Selection {
	return m.selection
}

// Source returns the source assembled from the current selection
func (m Model) Source() string {
	return m.source
}

// Saved reports whether the user asked to keep the edits
func (m Model) Saved() bool {
	return m.saved
}

// Modified reports whether the selection differs from the one loaded
func (m Model) Modified() bool {
	return m.modified
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "w", "ctrl+s":
			m.saved = true
			m.quitting = true
			return m, tea.Quit
		case "tab", "left", "right", "h", "l":
			if m.focus == libraryPane {
				m.focus = selectionPane
			} else {
				m.focus = libraryPane
			}
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "enter", " ", "a":
			if m.focus == libraryPane && m.libCursor < len(m.library) {
				m.selection.Append(m.library[m.libCursor])
				m.changed()
			}
		case "d", "x", "backspace", "delete":
			if m.focus == selectionPane && m.selection.RemoveAt(m.selCursor) {
				if m.selCursor >= m.selection.Len() && m.selCursor > 0 {
					m.selCursor--
				}
				m.changed()
			}
		case "K", "shift+up":
			if m.focus == selectionPane && m.selection.MoveTo(m.selCursor, m.selCursor-1) {
				m.selCursor--
				m.changed()
			}
		case "J", "shift+down":
			if m.focus == selectionPane && m.selCursor < m.selection.Len()-1 &&
				m.selection.MoveTo(m.selCursor, m.selCursor+1) {
				m.selCursor++
				m.changed()
			}
		case "c":
			if !m.selection.IsEmpty() {
				m.selection.Clear()
				m.selCursor = 0
				m.changed()
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == libraryPane {
		m.libCursor = clamp(m.libCursor+delta, len(m.library))
		return
	}
	m.selCursor = clamp(m.selCursor+delta, m.selection.Len())
}

func (m *Model) changed() {
	m.modified = true
	m.refresh()
}

func (m *Model) refresh() {
	m.source = m.assembler.Assemble(m.selection.Entries())
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	library := m.renderLibrary()
	selection := m.renderSelection()
	if m.focus == libraryPane {
		library = activeStyle.Render(library)
		selection = paneStyle.Render(selection)
	} else {
		library = paneStyle.Render(library)
		selection = activeStyle.Render(selection)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, library, selection)
	preview := previewStyle.Render(m.renderPreview())

	help := "tab: switch pane  ↑/↓: move  enter: add  d: remove  K/J: reorder  c: clear  w: save & quit  q: quit"
	return lipgloss.JoinVertical(lipgloss.Left, top, preview, helpStyle.Render(help))
}

func (m Model) renderLibrary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Component Library"))
	b.WriteString("\n\n")
	for i, def := range m.library {
		cursor := " "
		if m.focus == libraryPane && i == m.libCursor {
			cursor = cursorStyle.Render("▸")
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, def.Name)
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render(def.Description))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderSelection() string {
	var b strings.Builder
	title := "Selected Components"
	if m.modified {
		title += modifiedStyle.Render(" *")
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	if m.selection.IsEmpty() {
		b.WriteString(faintStyle.Render("Nothing selected yet"))
		return b.String()
	}
	for i, def := range m.selection.Entries() {
		cursor := " "
		if m.focus == selectionPane && i == m.selCursor {
			cursor = cursorStyle.Render("▸")
		}
		fmt.Fprintf(&b, "%s %2d. %s\n", cursor, i+1, def.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderPreview() string {
	lines := strings.Split(m.source, "\n")
	// Leave room for the panes and the help line
	if limit := m.height - lipgloss.Height(m.renderLibrary()) - 8; m.height > 0 && limit > 5 && len(lines) > limit {
		hidden := len(lines) - limit
		lines = append(lines[:limit], faintStyle.Render(fmt.Sprintf("… %d more lines", hidden)))
	}
	return titleStyle.Render("Contract Preview") + "\n\n" + strings.Join(lines, "\n")
}

// Run shows the builder screen until the user quits and returns the final
// model
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	p := tea.NewProgram(m, opts...)
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("builder failed: %w", err)
	}
	return final.(Model), nil
}
