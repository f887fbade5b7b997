package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// FormFieldType defines the type of form field
type FormFieldType int

const (
	FormFieldText FormFieldType = iota
	FormFieldTextArea
	FormFieldSelect
)

// FormField represents a single editable field
type FormField struct {
	Label    string
	Type     FormFieldType
	Input    textinput.Model // for text fields
	TextArea textarea.Model  // for textarea fields
	Options  []string        // for select fields
	Selected int             // current selection index for select fields
	Original string          // original value for dirty detection
}

// Field order within the form.
const (
	fieldTitle = iota
	fieldStatus
	fieldProject
	fieldAssignee
	fieldDeadline
	fieldTags
	fieldSprint
	fieldDescription
	fieldNotes
	numFormFields
)

const (
	sprintOptionBacklog = "Backlog"
	sprintOptionSprint  = "Sprint"
)

// TaskForm provides field-by-field task editing. The same form backs both
// the create buffer and the edit buffer; taskID is zero in create mode.
type TaskForm struct {
	fields       []FormField
	focusedField int
	width        int
	height       int
	theme        Theme
	taskID       int64
	isCreateMode bool
	dirty        bool

	saveRequested   bool
	cancelRequested bool
}

// NewEditForm creates a form pre-populated from an existing task.
func NewEditForm(task model.Task, projects, assignees []string, theme Theme) TaskForm {
	sprintVal := sprintOptionBacklog
	if task.InSprint {
		sprintVal = sprintOptionSprint
	}
	notes := ""
	if task.Notes != nil {
		notes = *task.Notes
	}

	fields := make([]FormField, numFormFields)
	fields[fieldTitle] = makeTextField("Title", task.Title)
	fields[fieldStatus] = makeSelectField("Status", task.Status.Label(), model.StatusLabels())
	fields[fieldProject] = makeSelectField("Project", task.Project, projects)
	fields[fieldAssignee] = makeSelectField("Assignee", task.Assignee, assignees)
	fields[fieldDeadline] = makeTextField("Deadline", task.DeadlineString())
	fields[fieldTags] = makeTextField("Tags", strings.Join(task.Tags, ", "))
	fields[fieldSprint] = makeSelectField("Lane", sprintVal, []string{sprintOptionBacklog, sprintOptionSprint})
	fields[fieldDescription] = makeTextAreaField("Description", task.Description)
	fields[fieldNotes] = makeTextAreaField("Notes", notes)

	fields[fieldTitle].Input.Focus()

	return TaskForm{
		fields:       fields,
		focusedField: fieldTitle,
		theme:        theme,
		taskID:       task.ID,
		isCreateMode: false,
	}
}

// NewCreateForm creates a form with defaults for a new task.
func NewCreateForm(projects, assignees []string, theme Theme) TaskForm {
	fields := make([]FormField, numFormFields)
	fields[fieldTitle] = makeTextField("Title", "")
	fields[fieldStatus] = makeSelectField("Status", model.StatusTodo.Label(), model.StatusLabels())
	fields[fieldProject] = makeSelectField("Project", model.DefaultProject, projects)
	fields[fieldAssignee] = makeSelectField("Assignee", model.DefaultAssignee, assignees)
	fields[fieldDeadline] = makeTextField("Deadline", "")
	fields[fieldTags] = makeTextField("Tags", "")
	fields[fieldSprint] = makeSelectField("Lane", sprintOptionBacklog, []string{sprintOptionBacklog, sprintOptionSprint})
	fields[fieldDescription] = makeTextAreaField("Description", "")
	fields[fieldNotes] = makeTextAreaField("Notes", "")

	fields[fieldTitle].Input.Focus()

	return TaskForm{
		fields:       fields,
		focusedField: fieldTitle,
		theme:        theme,
		isCreateMode: true,
	}
}

func makeTextField(label, value string) FormField {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = model.MaxTitleLen
	ti.Width = 50

	return FormField{
		Label:    label,
		Type:     FormFieldText,
		Input:    ti,
		Original: value,
	}
}

func makeTextAreaField(label, value string) FormField {
	ta := textarea.New()
	ta.SetValue(value)
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.CharLimit = model.MaxDescriptionLen

	return FormField{
		Label:    label,
		Type:     FormFieldTextArea,
		TextArea: ta,
		Original: value,
	}
}

func makeSelectField(label, value string, options []string) FormField {
	selected := -1
	for i, opt := range options {
		if opt == value {
			selected = i
			break
		}
	}
	// A value missing from the option list (say, a project deleted
	// server-side) must not silently snap to another entry on save.
	if selected < 0 {
		if value != "" {
			options = append(append([]string(nil), options...), value)
			selected = len(options) - 1
		} else {
			selected = 0
		}
	}

	return FormField{
		Label:    label,
		Type:     FormFieldSelect,
		Options:  options,
		Selected: selected,
		Original: value,
	}
}

// Update handles input for the form
func (m TaskForm) Update(msg tea.Msg) (TaskForm, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			m.saveRequested = true
			return m, nil

		case "esc":
			m.cancelRequested = true
			return m, nil

		case "tab":
			m.fields[m.focusedField] = blurField(m.fields[m.focusedField])
			m.focusedField = (m.focusedField + 1) % len(m.fields)
			m.fields[m.focusedField] = focusField(m.fields[m.focusedField])
			return m, nil

		case "shift+tab":
			m.fields[m.focusedField] = blurField(m.fields[m.focusedField])
			m.focusedField = (m.focusedField - 1 + len(m.fields)) % len(m.fields)
			m.fields[m.focusedField] = focusField(m.fields[m.focusedField])
			return m, nil

		case "left":
			if m.fields[m.focusedField].Type == FormFieldSelect {
				field := &m.fields[m.focusedField]
				if len(field.Options) > 0 {
					field.Selected = (field.Selected - 1 + len(field.Options)) % len(field.Options)
				}
				m.updateDirtyFlag()
				return m, nil
			}

		case "right":
			if m.fields[m.focusedField].Type == FormFieldSelect {
				field := &m.fields[m.focusedField]
				if len(field.Options) > 0 {
					field.Selected = (field.Selected + 1) % len(field.Options)
				}
				m.updateDirtyFlag()
				return m, nil
			}
		}

		// Pass key to focused field
		field := &m.fields[m.focusedField]
		switch field.Type {
		case FormFieldText:
			field.Input, cmd = field.Input.Update(msg)
			cmds = append(cmds, cmd)
		case FormFieldTextArea:
			field.TextArea, cmd = field.TextArea.Update(msg)
			cmds = append(cmds, cmd)
		}
		m.updateDirtyFlag()
	}

	return m, tea.Batch(cmds...)
}

func focusField(field FormField) FormField {
	switch field.Type {
	case FormFieldText:
		field.Input.Focus()
	case FormFieldTextArea:
		field.TextArea.Focus()
	}
	return field
}

func blurField(field FormField) FormField {
	switch field.Type {
	case FormFieldText:
		field.Input.Blur()
	case FormFieldTextArea:
		field.TextArea.Blur()
	}
	return field
}

// updateDirtyFlag checks if any field differs from its original value
func (m *TaskForm) updateDirtyFlag() {
	m.dirty = false
	for _, field := range m.fields {
		if currentValue(field) != field.Original {
			m.dirty = true
			break
		}
	}
}

func currentValue(field FormField) string {
	switch field.Type {
	case FormFieldText:
		return field.Input.Value()
	case FormFieldTextArea:
		return field.TextArea.Value()
	case FormFieldSelect:
		if field.Selected >= 0 && field.Selected < len(field.Options) {
			return field.Options[field.Selected]
		}
		return ""
	}
	return ""
}

// View renders the form
func (m TaskForm) View() string {
	r := m.theme.Renderer

	boxWidth := m.width - 10
	if boxWidth < 60 {
		boxWidth = 60
	}
	if boxWidth > 80 {
		boxWidth = 80
	}

	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)

	var title string
	if m.isCreateMode {
		title = "New Task"
	} else {
		title = fmt.Sprintf("Edit Task #%d", m.taskID)
	}

	var content strings.Builder
	content.WriteString(headerStyle.Render(title))
	content.WriteString("\n\n")

	labelStyle := r.NewStyle().
		Foreground(m.theme.Secondary).
		Width(12).
		Align(lipgloss.Right)

	focusedLabelStyle := r.NewStyle().
		Foreground(m.theme.Primary).
		Bold(true).
		Width(12).
		Align(lipgloss.Right)

	selectStyle := r.NewStyle().
		Foreground(m.theme.Primary)

	for i, field := range m.fields {
		isFocused := i == m.focusedField

		var labelStr string
		if isFocused {
			labelStr = focusedLabelStyle.Render(field.Label + ":")
		} else {
			labelStr = labelStyle.Render(field.Label + ":")
		}
		content.WriteString(labelStr)
		content.WriteString(" ")

		switch field.Type {
		case FormFieldText:
			content.WriteString(field.Input.View())

		case FormFieldTextArea:
			taView := field.TextArea.View()
			lines := strings.Split(taView, "\n")
			for idx, line := range lines {
				if idx > 0 {
					content.WriteString(strings.Repeat(" ", 13)) // indent to match label width
				}
				content.WriteString(line)
				if idx < len(lines)-1 {
					content.WriteString("\n")
				}
			}

		case FormFieldSelect:
			val := ""
			if field.Selected >= 0 && field.Selected < len(field.Options) {
				val = field.Options[field.Selected]
			}
			if isFocused {
				content.WriteString(selectStyle.Render(fmt.Sprintf("< %s >", val)))
			} else {
				content.WriteString(val)
			}
		}

		content.WriteString("\n")
		if field.Type == FormFieldTextArea {
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	subtextStyle := r.NewStyle().
		Foreground(m.theme.Subtext).
		Italic(true)

	instructions := "[Tab] Next field   [Ctrl+S] Save   [Esc] Cancel"
	if m.fields[m.focusedField].Type == FormFieldSelect {
		instructions = "[←/→] Change   [Tab] Next field   [Ctrl+S] Save   [Esc] Cancel"
	}
	content.WriteString(subtextStyle.Render(instructions))

	boxStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(1, 2).
		Width(boxWidth)

	box := boxStyle.Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize sets the form dimensions
func (m *TaskForm) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ClearRequests resets the save/cancel request flags after the parent
// model has acted on them.
func (m *TaskForm) ClearRequests() {
	m.saveRequested = false
	m.cancelRequested = false
}

// IsSaveRequested returns true if ctrl+s was pressed
func (m TaskForm) IsSaveRequested() bool {
	return m.saveRequested
}

// IsCancelRequested returns true if esc was pressed
func (m TaskForm) IsCancelRequested() bool {
	return m.cancelRequested
}

// IsCreateMode reports whether the form backs the new-task buffer.
func (m TaskForm) IsCreateMode() bool {
	return m.isCreateMode
}

// TaskID returns the id of the task being edited (zero in create mode).
func (m TaskForm) TaskID() int64 {
	return m.taskID
}

// BuildDraft collects the current field values into a draft. Validation
// and tag normalization happen in the store, not here.
func (m TaskForm) BuildDraft() model.Draft {
	status, _ := model.StatusFromLabel(currentValue(m.fields[fieldStatus]))
	return model.Draft{
		Title:       currentValue(m.fields[fieldTitle]),
		Description: currentValue(m.fields[fieldDescription]),
		TagsInput:   currentValue(m.fields[fieldTags]),
		Deadline:    currentValue(m.fields[fieldDeadline]),
		Project:     currentValue(m.fields[fieldProject]),
		Assignee:    currentValue(m.fields[fieldAssignee]),
		Status:      status,
		InSprint:    currentValue(m.fields[fieldSprint]) == sprintOptionSprint,
		Notes:       currentValue(m.fields[fieldNotes]),
	}
}
