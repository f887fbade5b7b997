package ui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/taskdeck/pkg/config"
	"github.com/vanderheijden86/taskdeck/pkg/model"
	"github.com/vanderheijden86/taskdeck/pkg/store"
)

// storeOp identifies which store operation a result message belongs to.
type storeOp int

const (
	opLoad storeOp = iota
	opCreate
	opUpdate
	opStatus
	opSprint
	opDelete
	opGenerate
)

// opDoneMsg is sent when a store operation finishes. The model re-reads
// the store snapshot on receipt; ok drives buffer reset decisions.
type opDoneMsg struct {
	op storeOp
	ok bool
}

// statusNoticeMsg carries a transient status bar notice (e.g. clipboard copy).
type statusNoticeMsg struct {
	text string
}

// configSavedMsg reports the outcome of persisting the config file.
type configSavedMsg struct {
	err error
}

func loadCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opLoad, ok: s.Load(context.Background())}
	}
}

func createCmd(s *store.Store, d model.Draft) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opCreate, ok: s.Create(context.Background(), d)}
	}
}

func updateCmd(s *store.Store, id int64, d model.Draft) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opUpdate, ok: s.Update(context.Background(), id, d)}
	}
}

func setStatusCmd(s *store.Store, id int64, status model.Status) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opStatus, ok: s.SetStatus(context.Background(), id, status)}
	}
}

func setSprintCmd(s *store.Store, id int64, inSprint bool) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opSprint, ok: s.SetSprint(context.Background(), id, inSprint)}
	}
}

func deleteCmd(s *store.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opDelete, ok: s.Delete(context.Background(), id)}
	}
}

func generateCmd(s *store.Store, notes string) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: opGenerate, ok: s.Generate(context.Background(), notes)}
	}
}

func yankCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusNoticeMsg{text: "clipboard unavailable"}
		}
		return statusNoticeMsg{text: "copied to clipboard"}
	}
}

func saveConfigCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return configSavedMsg{err: config.Save(cfg)}
	}
}
