package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

func strPtr(s string) *string { return &s }

func testTask() model.Task {
	return model.Task{
		ID:       42,
		Title:    "Fix login flow",
		Tags:     []string{"auth", "bug"},
		Deadline: strPtr("2099-03-01"),
		Project:  "Core",
		Assignee: "Ana",
		Status:   model.StatusInProgress,
		InSprint: true,
		Notes:    strPtr("raised in standup"),
	}
}

func TestEditFormRoundTrip(t *testing.T) {
	task := testTask()
	f := NewEditForm(task, []string{"Core", "Docs"}, []string{"Ana", "Bo"}, TestTheme())

	d := f.BuildDraft()
	if d.Title != "Fix login flow" {
		t.Errorf("Title = %q", d.Title)
	}
	if d.TagsInput != "auth, bug" {
		t.Errorf("TagsInput = %q", d.TagsInput)
	}
	if d.Deadline != "2099-03-01" {
		t.Errorf("Deadline = %q", d.Deadline)
	}
	if d.Project != "Core" || d.Assignee != "Ana" {
		t.Errorf("Project/Assignee = %q/%q", d.Project, d.Assignee)
	}
	if d.Status != model.StatusInProgress {
		t.Errorf("Status = %q", d.Status)
	}
	if !d.InSprint {
		t.Error("InSprint should round-trip true")
	}
	if d.Notes != "raised in standup" {
		t.Errorf("Notes = %q", d.Notes)
	}
	if f.TaskID() != 42 || f.IsCreateMode() {
		t.Error("edit form should carry the task id and not be in create mode")
	}
}

func TestCreateFormDefaults(t *testing.T) {
	f := NewCreateForm([]string{model.DefaultProject}, []string{model.DefaultAssignee}, TestTheme())

	d := f.BuildDraft()
	if d.Title != "" {
		t.Errorf("Title = %q; want empty", d.Title)
	}
	if d.Status != model.StatusTodo {
		t.Errorf("Status = %q; want todo", d.Status)
	}
	if d.Project != model.DefaultProject || d.Assignee != model.DefaultAssignee {
		t.Errorf("Project/Assignee = %q/%q; want sentinels", d.Project, d.Assignee)
	}
	if d.InSprint {
		t.Error("new tasks default to the backlog")
	}
	if !f.IsCreateMode() {
		t.Error("expected create mode")
	}
}

func TestEditFormKeepsValueMissingFromOptions(t *testing.T) {
	task := testTask()
	task.Project = "Legacy"
	task.Assignee = "Zara"
	f := NewEditForm(task, []string{"Core", "Docs"}, []string{"Ana", "Bo"}, TestTheme())

	d := f.BuildDraft()
	if d.Project != "Legacy" {
		t.Errorf("Project = %q; an off-list value must survive the round trip", d.Project)
	}
	if d.Assignee != "Zara" {
		t.Errorf("Assignee = %q; an off-list value must survive the round trip", d.Assignee)
	}
	if f.dirty {
		t.Error("opening the form must not count as an edit")
	}
}

func TestFormSelectCycling(t *testing.T) {
	f := NewCreateForm([]string{"General"}, []string{"Unassigned"}, TestTheme())

	// Move focus to the status select, then cycle right once.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focusedField != fieldStatus {
		t.Fatalf("focusedField = %d; want status", f.focusedField)
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRight})

	d := f.BuildDraft()
	if d.Status != model.StatusInProgress {
		t.Errorf("Status after cycle = %q; want in_progress", d.Status)
	}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if d := f.BuildDraft(); d.Status != model.StatusTodo {
		t.Errorf("Status after cycling back = %q; want todo", d.Status)
	}
}

func TestFormTypingMarksDirty(t *testing.T) {
	f := NewCreateForm(nil, nil, TestTheme())
	if f.dirty {
		t.Fatal("fresh form should be clean")
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !f.dirty {
		t.Error("typed input should mark the form dirty")
	}
}

func TestFormSaveAndCancelRequests(t *testing.T) {
	f := NewCreateForm(nil, nil, TestTheme())

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !f.IsSaveRequested() {
		t.Error("ctrl+s should request save")
	}
	f.ClearRequests()
	if f.IsSaveRequested() {
		t.Error("ClearRequests should reset the save flag")
	}

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !f.IsCancelRequested() {
		t.Error("esc should request cancel")
	}
}

func TestFormTabWrapsAround(t *testing.T) {
	f := NewCreateForm(nil, nil, TestTheme())
	for i := 0; i < numFormFields; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	if f.focusedField != fieldTitle {
		t.Errorf("focusedField = %d after full cycle; want title", f.focusedField)
	}
}

func TestFormViewSmoke(t *testing.T) {
	f := NewEditForm(testTask(), []string{"Core"}, []string{"Ana"}, TestTheme())
	f.SetSize(100, 40)

	out := f.View()
	if out == "" {
		t.Fatal("View should produce output")
	}
	if !containsStr(out, "Edit Task #42") {
		t.Error("edit view should show the task id")
	}
}
