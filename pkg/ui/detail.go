package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// DetailModel renders a single task as a scrollable markdown panel.
type DetailModel struct {
	vp       viewport.Model
	renderer *glamour.TermRenderer
	theme    Theme
	task     model.Task
	width    int
	height   int

	closeRequested bool
}

// NewDetail builds the detail view for a task.
func NewDetail(task model.Task, theme Theme, width, height int) DetailModel {
	d := DetailModel{
		theme:  theme,
		task:   task,
		width:  width,
		height: height,
	}
	d.vp = viewport.New(d.contentWidth(), d.contentHeight())

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(d.contentWidth()),
	)
	if err == nil {
		d.renderer = r
	}
	d.vp.SetContent(d.renderTask())
	return d
}

func (d DetailModel) contentWidth() int {
	w := d.width - 8
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (d DetailModel) contentHeight() int {
	h := d.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

func (d DetailModel) renderTask() string {
	t := d.task

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", t.Title)
	fmt.Fprintf(&md, "**Status:** %s  \n", t.Status.Label())
	fmt.Fprintf(&md, "**Project:** %s · **Assignee:** %s  \n", t.Project, t.Assignee)
	if t.HasDeadline() {
		days, _ := model.ClassifyDeadline(t.DeadlineString(), time.Now())
		if days == model.Overdue {
			fmt.Fprintf(&md, "**Deadline:** %s (overdue)  \n", t.DeadlineString())
		} else {
			fmt.Fprintf(&md, "**Deadline:** %s (%d working days)  \n", t.DeadlineString(), days)
		}
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&md, "**Tags:** %s  \n", strings.Join(t.Tags, ", "))
	}
	if t.Description != "" {
		fmt.Fprintf(&md, "\n## Description\n\n%s\n", t.Description)
	}
	if t.Notes != nil && *t.Notes != "" {
		fmt.Fprintf(&md, "\n## Notes\n\n%s\n", *t.Notes)
	}

	if d.renderer == nil {
		return md.String()
	}
	out, err := d.renderer.Render(md.String())
	if err != nil {
		return md.String()
	}
	return out
}

// IsCloseRequested returns true once the view was dismissed.
func (d DetailModel) IsCloseRequested() bool {
	return d.closeRequested
}

// SetSize resizes the panel and re-renders the content.
func (d *DetailModel) SetSize(width, height int) {
	d.width = width
	d.height = height
	d.vp.Width = d.contentWidth()
	d.vp.Height = d.contentHeight()
	d.vp.SetContent(d.renderTask())
}

// Update handles input for the detail view.
func (d DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q", "enter":
			d.closeRequested = true
			return d, nil
		}
	}
	var cmd tea.Cmd
	d.vp, cmd = d.vp.Update(msg)
	return d, cmd
}

// View renders the detail panel.
func (d DetailModel) View() string {
	t := d.theme
	r := t.Renderer

	var content strings.Builder
	content.WriteString(d.vp.View())
	content.WriteString("\n")
	content.WriteString(r.NewStyle().Foreground(t.Subtext).Italic(true).Render(
		"[j/k] scroll   [esc] close"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content.String())

	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, box)
}
