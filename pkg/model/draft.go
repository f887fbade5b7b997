package model

import (
	"errors"
	"fmt"
	"strings"
)

// Validation limits enforced by the remote store; normalization applies
// them locally so a bad draft never leaves the process.
const (
	MaxTitleLen       = 500
	MaxDescriptionLen = 10000
	MaxTags           = 50
	MaxTagLen         = 100
	MaxNotesLen       = 2000
)

// ErrEmptyTitle is returned when a draft is submitted without a title.
var ErrEmptyTitle = errors.New("title must not be empty")

// autoTags are appended to a task's tags whenever the lowercased title
// contains them as a substring.
var autoTags = []string{"bug", "feature", "urgent"}

// Draft is a partially-specified task staged by a create or edit form.
// Fields hold raw user input and may be invalid or incomplete until
// Normalize is called at submission time; in particular TagsInput is the
// untouched comma-separated string so intermediate typing states stay
// unvalidated.
type Draft struct {
	Title       string
	Description string
	TagsInput   string // comma-separated, split on submission
	Deadline    string // ISO YYYY-MM-DD or ""
	Project     string
	Assignee    string
	Status      Status
	InSprint    bool
	Notes       string
}

// DraftFromTask seeds an edit buffer from an existing task.
func DraftFromTask(t Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		TagsInput:   strings.Join(t.Tags, ", "),
		Deadline:    t.DeadlineString(),
		Project:     t.Project,
		Assignee:    t.Assignee,
		Status:      t.Status,
		InSprint:    t.InSprint,
		Notes:       stringOrEmpty(t.Notes),
	}
}

// NewDraft returns the empty create buffer: status todo, everything else
// blank, backlog lane.
func NewDraft() Draft {
	return Draft{Status: StatusTodo}
}

// Normalize converts the draft into a validated task (without an ID) in
// a single deterministic pass:
//
//   - title/description/notes trimmed, title required
//   - project/assignee trimmed, empty coerced to the sentinel defaults
//   - tags split on commas, trimmed, de-duplicated in first-seen order
//   - bug/feature/urgent auto-appended when the lowercased title
//     contains them
//   - empty deadline coerced to absent
//   - unknown status coerced to todo
//
// The draft itself is not mutated, so a failed submission leaves the
// user's input intact for retry.
func (d Draft) Normalize() (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	if len(title) > MaxTitleLen {
		return Task{}, fmt.Errorf("title must be at most %d characters", MaxTitleLen)
	}

	description := strings.TrimSpace(d.Description)
	if len(description) > MaxDescriptionLen {
		return Task{}, fmt.Errorf("description must be at most %d characters", MaxDescriptionLen)
	}

	tags := splitTags(d.TagsInput)
	tags = augmentTags(tags, title)
	if len(tags) > MaxTags {
		return Task{}, fmt.Errorf("tags must be at most %d items", MaxTags)
	}
	for _, tag := range tags {
		if len(tag) > MaxTagLen {
			return Task{}, fmt.Errorf("each tag must be at most %d characters", MaxTagLen)
		}
	}

	project := strings.TrimSpace(d.Project)
	if project == "" {
		project = DefaultProject
	}
	assignee := strings.TrimSpace(d.Assignee)
	if assignee == "" {
		assignee = DefaultAssignee
	}

	var deadline *string
	if dl := strings.TrimSpace(d.Deadline); dl != "" {
		deadline = &dl
	}

	var notes *string
	if n := strings.TrimSpace(d.Notes); n != "" {
		if len(n) > MaxNotesLen {
			return Task{}, fmt.Errorf("notes must be at most %d characters", MaxNotesLen)
		}
		notes = &n
	}

	return Task{
		Title:       title,
		Description: description,
		Tags:        tags,
		Deadline:    deadline,
		Project:     project,
		Assignee:    assignee,
		Status:      NormalizeStatus(d.Status),
		InSprint:    d.InSprint,
		Notes:       notes,
	}, nil
}

// splitTags splits a comma-separated tag string, trimming whitespace and
// dropping empties and duplicates while preserving first-seen order.
func splitTags(input string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, raw := range strings.Split(input, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// augmentTags appends the auto tags implied by the title, skipping any
// the user already supplied.
func augmentTags(tags []string, title string) []string {
	lower := strings.ToLower(title)
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		seen[tag] = true
	}
	for _, auto := range autoTags {
		if strings.Contains(lower, auto) && !seen[auto] {
			tags = append(tags, auto)
		}
	}
	return tags
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
