package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/filter"
)

// filterDimension indexes the four selectable dimensions in panel order.
type filterDimension int

const (
	dimProject filterDimension = iota
	dimAssignee
	dimTag
	dimStatus
	numDimensions
)

func (d filterDimension) String() string {
	switch d {
	case dimProject:
		return "Project"
	case dimAssignee:
		return "Assignee"
	case dimTag:
		return "Tag"
	case dimStatus:
		return "Status"
	default:
		return "?"
	}
}

// FilterPanel is the multi-select filter overlay. It edits a copy of the
// board's selection; the parent model reads Selection() back when the
// panel closes.
type FilterPanel struct {
	options   filter.Options
	selection filter.Selection
	dimension filterDimension
	cursor    int
	width     int
	height    int
	theme     Theme

	closeRequested bool
}

// NewFilterPanel builds a panel over the given options, seeded with the
// currently active selection.
func NewFilterPanel(options filter.Options, selection filter.Selection, theme Theme) FilterPanel {
	return FilterPanel{
		options:   options,
		selection: selection,
		theme:     theme,
	}
}

// Selection returns the edited selection.
func (p FilterPanel) Selection() filter.Selection {
	return p.selection
}

// IsCloseRequested returns true once esc or q was pressed.
func (p FilterPanel) IsCloseRequested() bool {
	return p.closeRequested
}

// SetSize sets the panel dimensions.
func (p *FilterPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p FilterPanel) dimensionOptions(d filterDimension) []string {
	switch d {
	case dimProject:
		return p.options.Projects
	case dimAssignee:
		return p.options.Assignees
	case dimTag:
		return p.options.Tags
	case dimStatus:
		return p.options.Statuses
	default:
		return nil
	}
}

func (p FilterPanel) dimensionSet(d filterDimension) map[string]bool {
	switch d {
	case dimProject:
		return p.selection.Projects
	case dimAssignee:
		return p.selection.Assignees
	case dimTag:
		return p.selection.Tags
	case dimStatus:
		return p.selection.Statuses
	default:
		return nil
	}
}

// Update handles input for the filter panel.
func (p FilterPanel) Update(msg tea.Msg) FilterPanel {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p
	}

	opts := p.dimensionOptions(p.dimension)

	switch key.String() {
	case "esc", "q", "f":
		p.closeRequested = true

	case "h", "left", "shift+tab":
		p.dimension = (p.dimension - 1 + numDimensions) % numDimensions
		p.cursor = 0

	case "l", "right", "tab":
		p.dimension = (p.dimension + 1) % numDimensions
		p.cursor = 0

	case "j", "down":
		if p.cursor < len(opts)-1 {
			p.cursor++
		}

	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}

	case " ", "enter":
		if p.cursor >= 0 && p.cursor < len(opts) {
			set := p.dimensionSet(p.dimension)
			val := opts[p.cursor]
			if set[val] {
				delete(set, val)
			} else {
				set[val] = true
			}
		}

	case "c":
		p.selection = filter.NewSelection()
	}

	return p
}

// View renders the filter panel.
func (p FilterPanel) View() string {
	t := p.theme
	r := t.Renderer

	colWidth := (p.width - 16) / int(numDimensions)
	if colWidth < 14 {
		colWidth = 14
	}

	var cols []string
	for d := filterDimension(0); d < numDimensions; d++ {
		var sb strings.Builder

		header := d.String()
		if set := p.dimensionSet(d); len(set) > 0 {
			header = fmt.Sprintf("%s (%d)", header, len(set))
		}
		if d == p.dimension {
			sb.WriteString(t.PrimaryBold.Render(header))
		} else {
			sb.WriteString(t.SecondaryText.Bold(true).Render(header))
		}
		sb.WriteString("\n\n")

		opts := p.dimensionOptions(d)
		if len(opts) == 0 {
			sb.WriteString(t.MutedText.Italic(true).Render("(none)"))
		}
		set := p.dimensionSet(d)
		for i, opt := range opts {
			mark := "[ ]"
			if set[opt] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, truncate(opt, colWidth-5))
			if d == p.dimension && i == p.cursor {
				sb.WriteString(t.Selected.Render(line))
			} else if set[opt] {
				sb.WriteString(t.PrimaryBold.Render(line))
			} else {
				sb.WriteString(t.Base.Render(line))
			}
			sb.WriteString("\n")
		}

		cols = append(cols, r.NewStyle().Width(colWidth).Render(sb.String()))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var content strings.Builder
	content.WriteString(t.PrimaryBold.Render("Filters"))
	content.WriteString("\n\n")
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(r.NewStyle().Foreground(t.Subtext).Italic(true).Render(
		"[space] toggle   [h/l] dimension   [j/k] move   [c] clear all   [esc] close"))

	box := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(content.String())

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}
