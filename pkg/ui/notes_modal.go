package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// NotesModal collects free-form meeting notes for task extraction. The
// buffer survives a failed submission so notes are never lost to a
// server hiccup.
type NotesModal struct {
	input  textarea.Model
	theme  Theme
	width  int
	height int

	submitRequested bool
	cancelRequested bool
}

// NewNotesModal creates an empty notes buffer.
func NewNotesModal(theme Theme) NotesModal {
	ta := textarea.New()
	ta.Placeholder = "Paste meeting notes here…"
	ta.SetWidth(60)
	ta.SetHeight(10)
	ta.CharLimit = model.MaxNotesLen
	ta.Focus()

	return NotesModal{
		input: ta,
		theme: theme,
	}
}

// Value returns the current notes text.
func (m NotesModal) Value() string {
	return m.input.Value()
}

// IsSubmitRequested returns true if ctrl+s was pressed.
func (m NotesModal) IsSubmitRequested() bool {
	return m.submitRequested
}

// IsCancelRequested returns true if esc was pressed.
func (m NotesModal) IsCancelRequested() bool {
	return m.cancelRequested
}

// ClearRequests resets the request flags after the parent acted on them.
func (m *NotesModal) ClearRequests() {
	m.submitRequested = false
	m.cancelRequested = false
}

// SetSize sets the modal dimensions.
func (m *NotesModal) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 20
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	m.input.SetWidth(w)
}

// Update handles input for the notes modal.
func (m NotesModal) Update(msg tea.Msg) (NotesModal, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+s":
			m.submitRequested = true
			return m, nil
		case "esc":
			m.cancelRequested = true
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the notes modal.
func (m NotesModal) View() string {
	t := m.theme
	r := t.Renderer

	var content strings.Builder
	content.WriteString(t.PrimaryBold.Render("Generate Tasks from Meeting Notes"))
	content.WriteString("\n\n")
	content.WriteString(m.input.View())
	content.WriteString("\n\n")
	content.WriteString(r.NewStyle().Foreground(t.Subtext).Italic(true).Render(
		"[Ctrl+S] Generate   [Esc] Cancel"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
