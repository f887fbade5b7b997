package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/taskdeck/pkg/filter"
	"github.com/vanderheijden86/taskdeck/pkg/model"
)

func testOptions() filter.Options {
	return filter.DeriveOptions([]model.Task{
		{ID: 1, Project: "Core", Assignee: "Ana", Tags: []string{"bug"}},
		{ID: 2, Project: "Docs", Assignee: "Bo", Tags: []string{"docs"}},
	})
}

func TestFilterPanelToggleOption(t *testing.T) {
	p := NewFilterPanel(testOptions(), filter.NewSelection(), TestTheme())

	p = p.Update(keySpace())
	sel := p.Selection()
	if len(sel.Projects) != 1 {
		t.Fatalf("projects selected = %d; want 1", len(sel.Projects))
	}

	// Toggling the same entry again deselects it.
	p = p.Update(keySpace())
	if !p.Selection().Empty() {
		t.Error("second toggle should deselect")
	}
}

func TestFilterPanelDimensionSwitch(t *testing.T) {
	p := NewFilterPanel(testOptions(), filter.NewSelection(), TestTheme())

	p = p.Update(keyRunes("l"))
	if p.dimension != dimAssignee {
		t.Errorf("dimension = %v; want assignee", p.dimension)
	}
	p = p.Update(keyRunes("h"))
	p = p.Update(keyRunes("h"))
	if p.dimension != dimStatus {
		t.Errorf("dimension = %v; want wrap-around to status", p.dimension)
	}
}

func TestFilterPanelCursorClampsToOptions(t *testing.T) {
	p := NewFilterPanel(testOptions(), filter.NewSelection(), TestTheme())

	for i := 0; i < 10; i++ {
		p = p.Update(keyRunes("j"))
	}
	opts := p.dimensionOptions(p.dimension)
	if p.cursor != len(opts)-1 {
		t.Errorf("cursor = %d; want clamped to %d", p.cursor, len(opts)-1)
	}
}

func TestFilterPanelClearAll(t *testing.T) {
	sel := filter.NewSelection()
	sel.Projects["Core"] = true
	sel.Tags["bug"] = true
	p := NewFilterPanel(testOptions(), sel, TestTheme())

	p = p.Update(keyRunes("c"))
	if !p.Selection().Empty() {
		t.Error("c should clear every dimension")
	}
}

func TestFilterPanelClose(t *testing.T) {
	p := NewFilterPanel(testOptions(), filter.NewSelection(), TestTheme())
	p = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !p.IsCloseRequested() {
		t.Error("esc should request close")
	}
}

func TestFilterPanelViewSmoke(t *testing.T) {
	sel := filter.NewSelection()
	sel.Statuses["Done"] = true
	p := NewFilterPanel(testOptions(), sel, TestTheme())
	p.SetSize(120, 40)

	out := p.View()
	if out == "" {
		t.Fatal("View should produce output")
	}
	for _, want := range []string{"Project", "Assignee", "Tag", "Status (1)"} {
		if !containsStr(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
