// Package model defines the task entity shared by every other package:
// the wire shape exchanged with the remote store, the closed status
// enumeration, draft normalization, and the deadline urgency classifier.
package model

// Task is a single tracked work item. The ID is assigned by the remote
// store on creation and never changes afterward; every other field is
// mutable through the store's update operations.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Deadline    *string  `json:"deadline"` // ISO YYYY-MM-DD; nil means no deadline
	Project     string   `json:"project"`
	Assignee    string   `json:"assignee"`
	Status      Status   `json:"status"`
	InSprint    bool     `json:"in_sprint"`
	Notes       *string  `json:"notes,omitempty"`
}

// Sentinel defaults. These are always valid filter options even when no
// task carries them, and the remote store refuses to delete their rows.
const (
	DefaultProject  = "General"
	DefaultAssignee = "Unassigned"

	// SentinelOptionID is the row id the remote store reserves for the
	// default project and assignee entries.
	SentinelOptionID = 1
)

// Option is a selectable project or assignee entry as served by the
// remote store's /projects and /assignees endpoints.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// HasDeadline reports whether the task carries a non-empty deadline.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil && *t.Deadline != ""
}

// DeadlineString returns the deadline or "" when absent.
func (t Task) DeadlineString() string {
	if t.Deadline == nil {
		return ""
	}
	return *t.Deadline
}

// HasTag reports whether the task carries the given tag (case-sensitive).
func (t Task) HasTag(tag string) bool {
	for _, tg := range t.Tags {
		if tg == tag {
			return true
		}
	}
	return false
}
