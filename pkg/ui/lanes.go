package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/taskdeck/pkg/board"
	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// laneTitle returns the rendered header line for a lane.
func (m Model) laneTitle(lane board.Lane, count int) string {
	t := m.theme
	title := fmt.Sprintf("%s (%d)", lane.String(), count)
	if lane == m.focusedLane {
		return t.Header.Render(title)
	}
	return t.Renderer.NewStyle().
		Foreground(t.Secondary).
		Bold(true).
		Padding(0, 1).
		Render(title)
}

// renderBoard renders the backlog and sprint lanes side by side.
func (m Model) renderBoard() string {
	laneWidth := (m.width - 6) / 2
	if laneWidth < 30 {
		laneWidth = 30
	}
	laneHeight := m.height - 4
	if laneHeight < 5 {
		laneHeight = 5
	}

	backlog := m.renderLane(board.LaneBacklog, m.backlog, laneWidth, laneHeight)
	sprint := m.renderLane(board.LaneSprint, m.sprint, laneWidth, laneHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, backlog, " ", sprint)
}

func (m Model) renderLane(lane board.Lane, tasks []model.Task, width, height int) string {
	t := m.theme

	var sb strings.Builder
	sb.WriteString(m.laneTitle(lane, len(tasks)))
	sb.WriteString("\n")

	if len(tasks) == 0 {
		sb.WriteString(t.MutedText.Italic(true).Render("  (empty)"))
		sb.WriteString("\n")
	}

	// Each card is two lines plus a blank; keep the cursor in view.
	const cardLines = 3
	visible := height / cardLines
	if visible < 1 {
		visible = 1
	}
	cursor := m.cursors[lane]
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(tasks) {
		end = len(tasks)
	}

	for i := start; i < end; i++ {
		sb.WriteString(m.renderCard(tasks[i], lane, i, width-4))
		sb.WriteString("\n")
	}
	if end < len(tasks) {
		sb.WriteString(t.MutedText.Render(fmt.Sprintf("  … +%d more", len(tasks)-end)))
		sb.WriteString("\n")
	}

	border := t.Border
	if lane == m.focusedLane {
		border = t.Primary
	}
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width).
		Height(height).
		Render(sb.String())
}

func (m Model) renderCard(task model.Task, lane board.Lane, row, width int) string {
	t := m.theme
	selected := lane == m.focusedLane && row == m.cursors[lane]

	marker := "  "
	if m.grab.Holding(task.ID) {
		marker = "✋"
	} else if selected {
		marker = "▸ "
	}

	title := truncate(task.Title, width-4)
	titleStyle := t.Base
	if selected {
		titleStyle = t.PrimaryBold
	}

	var meta strings.Builder
	meta.WriteString(RenderStatusBadge(task.Status))
	meta.WriteString(" ")
	if task.HasDeadline() {
		d := task.DeadlineString()
		_, urgency := model.ClassifyDeadline(d, time.Now())
		meta.WriteString(RenderDeadlineBadge(d, urgency))
		meta.WriteString(" ")
	}
	meta.WriteString(t.SecondaryText.Render(truncate(task.Project+" · "+task.Assignee, width-18)))

	var sb strings.Builder
	sb.WriteString(marker)
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n  ")
	sb.WriteString(meta.String())
	sb.WriteString("\n")
	return sb.String()
}

// truncate shortens s to maxWidth display cells, adding an ellipsis.
// Width-aware so double-width runes don't overflow the card.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// statusBar renders the bottom line: error surface, transient notices,
// loading indicator, and the active filter count.
func (m Model) statusBar() string {
	t := m.theme

	if msg := m.store.Err(); msg != "" {
		return t.ErrorText.Render("✗ " + truncate(msg, m.width-10) + "  (esc to dismiss)")
	}
	var parts []string
	if m.store.Loading() {
		parts = append(parts, t.SecondaryText.Render("loading…"))
	}
	if m.notice != "" {
		parts = append(parts, t.SecondaryText.Render(m.notice))
	}
	if n := m.selection.Count(); n > 0 {
		parts = append(parts, t.PrimaryBold.Render(fmt.Sprintf("filters: %d", n)))
	}
	if m.grab.active {
		parts = append(parts, t.PrimaryBold.Render("moving · space to drop · esc to cancel"))
	}
	parts = append(parts, t.MutedText.Render("n:new e:edit d:del s:status f:filter g:generate ?:keys q:quit"))
	return strings.Join(parts, "  ")
}
