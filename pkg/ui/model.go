package ui

import (
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskdeck/pkg/board"
	"github.com/vanderheijden86/taskdeck/pkg/config"
	"github.com/vanderheijden86/taskdeck/pkg/debug"
	"github.com/vanderheijden86/taskdeck/pkg/filter"
	"github.com/vanderheijden86/taskdeck/pkg/model"
	"github.com/vanderheijden86/taskdeck/pkg/store"
)

// mode represents which surface currently has keyboard focus
type mode int

const (
	modeBoard mode = iota
	modeForm
	modeFilter
	modeConfirm
	modeDetail
	modeNotes
	modeHelp
)

// Model is the main Bubble Tea model for td
type Model struct {
	store *store.Store
	cfg   config.Config

	theme    Theme
	renderer *lipgloss.Renderer
	ready    bool
	width    int
	height   int

	mode mode

	// Board state, recomputed from the store snapshot after every
	// operation result.
	tasks     []model.Task
	options   filter.Options
	selection filter.Selection
	backlog   []model.Task
	sprint    []model.Task

	focusedLane board.Lane
	cursors     [2]int // cursor row per lane, indexed by board.Lane
	grab        grabState

	// Overlays
	form    TaskForm
	filters FilterPanel
	confirm ConfirmDelete
	detail  DetailModel
	notes   NotesModal

	// createStash preserves an unsaved new-task buffer across closes so
	// a cancelled or failed create never loses typed input.
	createStash *TaskForm

	notice string
}

// NewModel creates the root model. The initial load is kicked off by Init.
func NewModel(s *store.Store, cfg config.Config) Model {
	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetHasDarkBackground(cfg.Dark())

	m := Model{
		store:     s,
		cfg:       cfg,
		renderer:  renderer,
		theme:     DefaultTheme(renderer),
		selection: filter.NewSelection(),
	}
	m.notes = NewNotesModal(m.theme)
	return m
}

// Init kicks off the initial data load.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.store)
}

// syncFromStore re-reads the store snapshot and recomputes the derived
// board state: filter options, the filtered collection, and both lanes.
func (m Model) syncFromStore() Model {
	m.tasks = m.store.Tasks()
	m.options = filter.DeriveOptions(m.tasks)
	visible := filter.Apply(m.tasks, m.selection)
	m.backlog, m.sprint = board.Partition(visible)

	for lane, tasks := range [2][]model.Task{m.backlog, m.sprint} {
		if m.cursors[lane] >= len(tasks) {
			m.cursors[lane] = len(tasks) - 1
		}
		if m.cursors[lane] < 0 {
			m.cursors[lane] = 0
		}
	}

	// A grabbed task can vanish under us when a reload drops it.
	if m.grab.active {
		if _, ok := m.store.Task(m.grab.taskID); !ok {
			m.grab.Reset()
		}
	}
	return m
}

func (m Model) laneTasks(lane board.Lane) []model.Task {
	if lane == board.LaneSprint {
		return m.sprint
	}
	return m.backlog
}

// selectedTask returns the task under the cursor in the focused lane.
func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.laneTasks(m.focusedLane)
	cur := m.cursors[m.focusedLane]
	if cur < 0 || cur >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cur], true
}

// Update is the main message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.form.SetSize(msg.Width, msg.Height)
		m.filters.SetSize(msg.Width, msg.Height)
		m.confirm.SetSize(msg.Width, msg.Height)
		m.notes.SetSize(msg.Width, msg.Height)
		if m.mode == modeDetail {
			m.detail.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case opDoneMsg:
		return m.handleOpDone(msg)

	case statusNoticeMsg:
		m.notice = msg.text
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			debug.Log("config save failed: %v", msg.err)
			m.notice = "could not save preferences"
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		// Route to the active overlay before board handling, so overlay
		// text input never triggers board shortcuts.
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeFilter:
			return m.updateFilter(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeNotes:
			return m.updateNotes(msg)
		case modeHelp:
			m.mode = modeBoard
			return m, nil
		}
		return m.updateBoard(msg)
	}

	// Non-key messages still drive overlay components (blink, form init).
	switch m.mode {
	case modeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeNotes:
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleOpDone resyncs from the store and applies per-operation buffer
// policy: buffers reset on success and survive failure.
func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m = m.syncFromStore()

	switch msg.op {
	case opCreate:
		if msg.ok {
			m.createStash = nil
			if m.mode == modeForm && m.form.IsCreateMode() {
				m.mode = modeBoard
			}
		}
	case opUpdate:
		if msg.ok && m.mode == modeForm && !m.form.IsCreateMode() {
			m.mode = modeBoard
		}
	case opGenerate:
		if msg.ok {
			m.notes = NewNotesModal(m.theme)
			m.notes.SetSize(m.width, m.height)
			if m.mode == modeNotes {
				m.mode = modeBoard
			}
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if m.form.IsCancelRequested() {
		m.form.ClearRequests()
		if m.form.IsCreateMode() {
			stash := m.form
			m.createStash = &stash
		}
		m.mode = modeBoard
		return m, nil
	}
	if m.form.IsSaveRequested() {
		m.form.ClearRequests()
		draft := m.form.BuildDraft()
		if m.form.IsCreateMode() {
			stash := m.form
			m.createStash = &stash
			return m, createCmd(m.store, draft)
		}
		return m, updateCmd(m.store, m.form.TaskID(), draft)
	}
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.filters = m.filters.Update(msg)
	if m.filters.IsCloseRequested() {
		m.selection = m.filters.Selection()
		m.mode = modeBoard
		m = m.syncFromStore()
	}
	return m, nil
}

// updateConfirm drives the delete prompt. The form completes on a
// follow-up internal message, not on the keypress itself, so every
// message routed here must check Done.
func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeBoard
		return m, nil
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		id := m.confirm.TaskID()
		accepted := m.confirm.Accepted()
		m.mode = modeBoard
		if accepted {
			return m, deleteCmd(m.store, id)
		}
		return m, nil
	}
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	if m.detail.IsCloseRequested() {
		m.mode = modeBoard
		return m, nil
	}
	return m, cmd
}

func (m Model) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)

	if m.notes.IsCancelRequested() {
		m.notes.ClearRequests()
		m.mode = modeBoard
		return m, nil
	}
	if m.notes.IsSubmitRequested() {
		m.notes.ClearRequests()
		return m, generateCmd(m.store, m.notes.Value())
	}
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.grab.active {
			m.grab.Reset()
			return m, nil
		}
		if m.store.Err() != "" {
			m.store.ClearError()
		}
		return m, nil

	case "h", "left":
		return m.switchLane(board.LaneBacklog), nil

	case "l", "right":
		return m.switchLane(board.LaneSprint), nil

	case "tab":
		return m.switchLane(m.focusedLane.Other()), nil

	case "j", "down":
		tasks := m.laneTasks(m.focusedLane)
		if m.cursors[m.focusedLane] < len(tasks)-1 {
			m.cursors[m.focusedLane]++
		}
		return m, nil

	case "k", "up":
		if m.cursors[m.focusedLane] > 0 {
			m.cursors[m.focusedLane]--
		}
		return m, nil

	case " ":
		return m.grabOrDrop()

	case "enter":
		if task, ok := m.selectedTask(); ok {
			m.detail = NewDetail(task, m.theme, m.width, m.height)
			m.mode = modeDetail
		}
		return m, nil

	case "n":
		if m.createStash != nil {
			m.form = *m.createStash
		} else {
			m.form = NewCreateForm(m.options.Projects, m.options.Assignees, m.theme)
		}
		m.form.SetSize(m.width, m.height)
		m.mode = modeForm
		return m, nil

	case "e":
		if task, ok := m.selectedTask(); ok {
			m.form = NewEditForm(task, m.options.Projects, m.options.Assignees, m.theme)
			m.form.SetSize(m.width, m.height)
			m.mode = modeForm
		}
		return m, nil

	case "d":
		if task, ok := m.selectedTask(); ok {
			m.confirm = NewConfirmDelete(task, m.theme)
			m.confirm.SetSize(m.width, m.height)
			m.mode = modeConfirm
			return m, m.confirm.Init()
		}
		return m, nil

	case "s":
		if task, ok := m.selectedTask(); ok {
			return m, setStatusCmd(m.store, task.ID, model.NextStatus(task.Status))
		}
		return m, nil

	case "f":
		m.filters = NewFilterPanel(m.options, m.selection, m.theme)
		m.filters.SetSize(m.width, m.height)
		m.mode = modeFilter
		return m, nil

	case "g":
		m.notes.SetSize(m.width, m.height)
		m.mode = modeNotes
		return m, nil

	case "D":
		m.cfg.SetDark(!m.cfg.Dark())
		m.renderer.SetHasDarkBackground(m.cfg.Dark())
		m.theme = DefaultTheme(m.renderer)
		return m, saveConfigCmd(m.cfg)

	case "r":
		return m, loadCmd(m.store)

	case "y":
		if task, ok := m.selectedTask(); ok {
			return m, yankCmd(task.Title)
		}
		return m, nil

	case "?":
		m.mode = modeHelp
		return m, nil
	}

	return m, nil
}

// switchLane moves focus (and the pending drop target while grabbing).
func (m Model) switchLane(lane board.Lane) Model {
	m.focusedLane = lane
	if m.grab.active {
		m.grab.Retarget(lane)
	}
	return m
}

// grabOrDrop toggles the relocation state machine. A drop onto the source
// lane cancels silently without touching the network.
func (m Model) grabOrDrop() (tea.Model, tea.Cmd) {
	if !m.grab.active {
		if task, ok := m.selectedTask(); ok {
			m.grab.Grab(task.ID, m.focusedLane)
		}
		return m, nil
	}

	id, toSprint, moved := m.grab.Drop()
	if !moved {
		return m, nil
	}
	return m, setSprintCmd(m.store, id, toSprint)
}

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "Initializing…"
	}

	var body string
	switch m.mode {
	case modeForm:
		body = m.form.View()
	case modeFilter:
		body = m.filters.View()
	case modeConfirm:
		body = m.confirm.View()
	case modeDetail:
		body = m.detail.View()
	case modeNotes:
		body = m.notes.View()
	case modeHelp:
		body = m.renderHelp()
	default:
		body = m.renderBoard()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}

func (m Model) renderHelp() string {
	t := m.theme

	rows := []struct{ key, desc string }{
		{"j/k, ↑/↓", "move within lane"},
		{"h/l, ←/→, tab", "switch lane"},
		{"space", "grab / drop task"},
		{"enter", "task detail"},
		{"n", "new task"},
		{"e", "edit task"},
		{"d", "delete task"},
		{"s", "cycle status"},
		{"f", "filters"},
		{"g", "generate from meeting notes"},
		{"y", "copy title"},
		{"D", "toggle dark mode"},
		{"r", "reload"},
		{"esc", "dismiss error / cancel grab"},
		{"q", "quit"},
	}

	var sb strings.Builder
	sb.WriteString(t.PrimaryBold.Render("Keys"))
	sb.WriteString("\n")
	sb.WriteString(RenderDivider(40))
	sb.WriteString("\n")
	keyStyle := t.Renderer.NewStyle().Foreground(t.Primary).Width(16)
	for _, row := range rows {
		sb.WriteString(keyStyle.Render(row.key))
		sb.WriteString(t.Base.Render(row.desc))
		sb.WriteString("\n")
	}

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
