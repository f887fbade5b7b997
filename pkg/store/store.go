// Package store holds the authoritative local mirror of the task
// collection and mediates every mutation through the remote API.
//
// Consistency model: last-response-wins. Mutations issued in quick
// succession race independently against the server and the last reload
// to complete determines the displayed state; nothing cancels in-flight
// requests. The mutex below protects memory, not ordering: store
// methods run inside Bubble Tea command goroutines, so the mirror must
// be safe to touch concurrently, but no stronger protocol is attempted.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/taskdeck/pkg/debug"
	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// RemoteAPI is the slice of the API client the store depends on.
type RemoteAPI interface {
	Tasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, t model.Task) error
	UpdateStatus(ctx context.Context, id int64, status model.Status) error
	UpdateSprint(ctx context.Context, id int64, inSprint bool) error
	DeleteTask(ctx context.Context, id int64) error
	GenerateTasks(ctx context.Context, meetingNotes string) error
	Projects(ctx context.Context) ([]model.Option, error)
	Assignees(ctx context.Context) ([]model.Option, error)
}

// ErrEmptyNotes is surfaced when generation is submitted with no text;
// the request never reaches the network.
var ErrEmptyNotes = errors.New("meeting notes must not be empty")

// Store is the task collection mirror. All fields are owned by the
// store; callers read derived copies and mutate only through methods.
// Callers must treat every method as a potential full-state replacement
// and never assume field-level merge semantics.
type Store struct {
	api RemoteAPI

	mu        sync.Mutex
	tasks     []model.Task
	projects  []model.Option
	assignees []model.Option
	loading   bool
	errMsg    string
}

// New returns an empty store backed by the given API.
func New(api RemoteAPI) *Store {
	return &Store{api: api}
}

// Tasks returns a copy of the current task collection.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Projects returns a copy of the selectable project options.
func (s *Store) Projects() []model.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Option, len(s.projects))
	copy(out, s.projects)
	return out
}

// Assignees returns a copy of the selectable assignee options.
func (s *Store) Assignees() []model.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Option, len(s.assignees))
	copy(out, s.assignees)
	return out
}

// Task returns the task with the given id, if present.
func (s *Store) Task(id int64) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Loading reports whether a collection fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the currently surfaced error message ("" when none).
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the surfaced error.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// Load fetches the entire collection plus the option lists and replaces
// local state wholesale. On failure the previous state stays untouched;
// there is no partial replacement. The loading flag is cleared on every
// exit path.
func (s *Store) Load(ctx context.Context) bool {
	s.beginOp()
	return s.refresh(ctx)
}

// refresh is Load without the error-slot reset, so a reload after a
// failed mutation does not wipe the message the user needs to see.
func (s *Store) refresh(ctx context.Context) bool {
	s.setLoading(true)
	defer s.setLoading(false)
	start := time.Now()
	defer func() { debug.LogTiming("store refresh", time.Since(start)) }()

	var (
		tasks     []model.Task
		projects  []model.Option
		assignees []model.Option
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.api.Tasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.api.Projects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		assignees, err = s.api.Assignees(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		debug.Log("load failed: %v", err)
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.tasks = tasks
	s.projects = projects
	s.assignees = assignees
	s.mu.Unlock()
	debug.Log("loaded %d tasks, %d projects, %d assignees", len(tasks), len(projects), len(assignees))
	return true
}

// Create normalizes and submits a draft. On success the server-returned
// task is appended locally without a full reload. On failure the
// collection is unchanged and the caller's draft buffer should be kept
// for retry.
func (s *Store) Create(ctx context.Context, draft model.Draft) bool {
	s.beginOp()

	task, err := draft.Normalize()
	if err != nil {
		s.fail(err)
		return false
	}

	created, err := s.api.CreateTask(ctx, task)
	if err != nil {
		s.fail(err)
		return false
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, created)
	s.mu.Unlock()
	return true
}

// Update normalizes the draft and submits a full replacement, then
// reloads the whole collection rather than merging locally, so
// server-side derived fields stay authoritative. On failure the edit
// buffer survives for retry.
func (s *Store) Update(ctx context.Context, id int64, draft model.Draft) bool {
	s.beginOp()

	task, err := draft.Normalize()
	if err != nil {
		s.fail(err)
		return false
	}
	task.ID = id

	if err := s.api.UpdateTask(ctx, id, task); err != nil {
		s.fail(err)
		return false
	}
	s.refresh(ctx)
	return true
}

// SetStatus submits only the status field and reloads on success.
func (s *Store) SetStatus(ctx context.Context, id int64, status model.Status) bool {
	s.beginOp()
	if err := s.api.UpdateStatus(ctx, id, status); err != nil {
		s.fail(err)
		return false
	}
	s.refresh(ctx)
	return true
}

// SetSprint submits only the sprint-membership flag and reloads on
// success.
func (s *Store) SetSprint(ctx context.Context, id int64, inSprint bool) bool {
	s.beginOp()
	if err := s.api.UpdateSprint(ctx, id, inSprint); err != nil {
		s.fail(err)
		return false
	}
	s.refresh(ctx)
	return true
}

// Delete removes a task and reloads. Callers must have obtained user
// confirmation before calling; the store issues the call
// unconditionally.
func (s *Store) Delete(ctx context.Context, id int64) bool {
	s.beginOp()
	if err := s.api.DeleteTask(ctx, id); err != nil {
		s.fail(err)
		return false
	}
	s.refresh(ctx)
	return true
}

// Generate submits meeting notes for server-side task extraction and
// then reloads. Empty notes short-circuit locally and never reach the
// network. Even when generation reports a failure the collection is
// refreshed: a partially failed batch may still have created tasks.
func (s *Store) Generate(ctx context.Context, meetingNotes string) bool {
	s.beginOp()

	if strings.TrimSpace(meetingNotes) == "" {
		s.fail(ErrEmptyNotes)
		return false
	}

	if err := s.api.GenerateTasks(ctx, meetingNotes); err != nil {
		s.fail(err)
		s.refresh(ctx) // keep whatever the batch did manage to create
		return false
	}
	s.refresh(ctx)
	return true
}

// beginOp clears the error slot before a new attempt; at most one error
// is surfaced at a time and the newest attempt owns the slot.
func (s *Store) beginOp() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
