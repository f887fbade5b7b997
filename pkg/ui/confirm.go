package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// ConfirmDelete wraps a huh confirm form for the delete prompt. Deletion
// is the only destructive operation on the board, so it is the only one
// gated behind a confirmation.
type ConfirmDelete struct {
	form     *huh.Form
	theme    Theme
	taskID   int64
	accepted bool
	width    int
	height   int
}

// NewConfirmDelete builds the confirmation prompt for a task.
func NewConfirmDelete(task model.Task, theme Theme) ConfirmDelete {
	c := ConfirmDelete{
		theme:  theme,
		taskID: task.ID,
	}
	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("delete").
				Title(fmt.Sprintf("Delete %q?", truncate(task.Title, 50))).
				Description("This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&c.accepted),
		),
	).WithTheme(huh.ThemeDracula())
	return c
}

// Init starts the underlying form.
func (c ConfirmDelete) Init() tea.Cmd {
	return c.form.Init()
}

// TaskID returns the id of the task up for deletion.
func (c ConfirmDelete) TaskID() int64 {
	return c.taskID
}

// Done reports whether the prompt has been answered.
func (c ConfirmDelete) Done() bool {
	return c.form.State == huh.StateCompleted || c.form.State == huh.StateAborted
}

// Accepted reports whether the user confirmed the deletion.
func (c ConfirmDelete) Accepted() bool {
	return c.form.State == huh.StateCompleted && c.form.GetBool("delete")
}

// SetSize sets the prompt dimensions.
func (c *ConfirmDelete) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Update routes input to the form.
func (c ConfirmDelete) Update(msg tea.Msg) (ConfirmDelete, tea.Cmd) {
	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}
	return c, cmd
}

// View renders the prompt centered on screen.
func (c ConfirmDelete) View() string {
	box := c.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.theme.Blocked).
		Padding(1, 2).
		Render(c.form.View())
	return lipgloss.Place(c.width, c.height, lipgloss.Center, lipgloss.Center, box)
}
