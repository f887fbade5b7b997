package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors - Light mode uses darker colors for contrast on white backgrounds
	ColorBgSubtle    = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}

	// Accent colors
	ColorDanger = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}

	// Status colors
	ColorStatusTodo       = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorStatusInProgress = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorStatusBlocked    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
	ColorStatusDone       = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}

	// Status background colors (for badges) - subtle backgrounds
	ColorStatusTodoBg       = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#1A3D2A"}
	ColorStatusInProgressBg = lipgloss.AdaptiveColor{Light: "#D1ECF1", Dark: "#1A3344"}
	ColorStatusBlockedBg    = lipgloss.AdaptiveColor{Light: "#F8D7DA", Dark: "#3D1A1A"}
	ColorStatusDoneBg       = lipgloss.AdaptiveColor{Light: "#E2E3E5", Dark: "#2A2A3D"}

	// Deadline urgency colors
	ColorUrgent    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
	ColorUrgentBg  = lipgloss.AdaptiveColor{Light: "#F8D7DA", Dark: "#3D1A1A"}
	ColorWarn      = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorWarnBg    = lipgloss.AdaptiveColor{Light: "#FFE8CC", Dark: "#3D2A1A"}
	ColorNeutral   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BFBFBF"}
	ColorNeutralBg = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#363949"}
)

// RenderStatusBadge returns a styled status badge
func RenderStatusBadge(status model.Status) string {
	var fg, bg lipgloss.AdaptiveColor
	var label string

	switch status {
	case model.StatusTodo:
		fg, bg, label = ColorStatusTodo, ColorStatusTodoBg, "TODO"
	case model.StatusInProgress:
		fg, bg, label = ColorStatusInProgress, ColorStatusInProgressBg, "PROG"
	case model.StatusBlocked:
		fg, bg, label = ColorStatusBlocked, ColorStatusBlockedBg, "BLKD"
	case model.StatusDone:
		fg, bg, label = ColorStatusDone, ColorStatusDoneBg, "DONE"
	default:
		fg, bg, label = ColorMuted, ColorBgSubtle, "????"
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 0).
		Render(label)
}

// RenderDeadlineBadge returns a deadline string colored by urgency.
func RenderDeadlineBadge(deadline string, urgency model.Urgency) string {
	var fg, bg lipgloss.AdaptiveColor
	switch urgency {
	case model.UrgencyUrgent:
		fg, bg = ColorUrgent, ColorUrgentBg
	case model.UrgencyWarning:
		fg, bg = ColorWarn, ColorWarnBg
	default:
		fg, bg = ColorNeutral, ColorNeutralBg
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(urgency == model.UrgencyUrgent).
		Render(deadline)
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
