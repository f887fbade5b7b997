// Package filter derives the selectable option lists from a task
// collection and applies the board's multi-criterion filter: OR within a
// dimension, AND across dimensions, with an empty dimension selection
// matching everything.
package filter

import (
	"sort"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// Selection holds the chosen option strings per filter dimension. An
// empty set for a dimension means no restriction. Statuses are display
// labels, not machine values, because that is what the filter panel
// surfaces.
type Selection struct {
	Projects  map[string]bool
	Assignees map[string]bool
	Tags      map[string]bool
	Statuses  map[string]bool
}

// NewSelection returns a Selection with no restrictions.
func NewSelection() Selection {
	return Selection{
		Projects:  make(map[string]bool),
		Assignees: make(map[string]bool),
		Tags:      make(map[string]bool),
		Statuses:  make(map[string]bool),
	}
}

// Empty reports whether no dimension restricts anything.
func (s Selection) Empty() bool {
	return len(s.Projects) == 0 && len(s.Assignees) == 0 &&
		len(s.Tags) == 0 && len(s.Statuses) == 0
}

// Count returns the total number of selected options across dimensions.
func (s Selection) Count() int {
	return len(s.Projects) + len(s.Assignees) + len(s.Tags) + len(s.Statuses)
}

// Options are the derived, duplicate-free, lexicographically sorted
// option lists for each dimension. The sentinel defaults are always
// present even when no task carries them.
type Options struct {
	Projects  []string
	Assignees []string
	Tags      []string
	Statuses  []string // display labels, fixed enum order
}

// DeriveOptions scans the collection and builds the option lists.
func DeriveOptions(tasks []model.Task) Options {
	projects := map[string]bool{model.DefaultProject: true}
	assignees := map[string]bool{model.DefaultAssignee: true}
	tags := map[string]bool{}

	for _, t := range tasks {
		if t.Project != "" {
			projects[t.Project] = true
		}
		if t.Assignee != "" {
			assignees[t.Assignee] = true
		}
		for _, tag := range t.Tags {
			if tag != "" {
				tags[tag] = true
			}
		}
	}

	return Options{
		Projects:  sortedKeys(projects),
		Assignees: sortedKeys(assignees),
		Tags:      sortedKeys(tags),
		Statuses:  model.StatusLabels(),
	}
}

// Apply returns the tasks matching the selection, preserving input
// order. The result is a fresh slice; the input is never mutated.
func Apply(tasks []model.Task, sel Selection) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, sel) {
			out = append(out, t)
		}
	}
	return out
}

// Matches reports whether a single task passes every dimension.
func Matches(t model.Task, sel Selection) bool {
	if len(sel.Projects) > 0 && !sel.Projects[t.Project] {
		return false
	}
	if len(sel.Assignees) > 0 && !sel.Assignees[t.Assignee] {
		return false
	}
	if len(sel.Tags) > 0 {
		any := false
		for _, tag := range t.Tags {
			if sel.Tags[tag] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if len(sel.Statuses) > 0 && !sel.Statuses[t.Status.Label()] {
		return false
	}
	return true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
