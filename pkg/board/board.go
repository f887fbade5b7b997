// Package board splits a task collection into the two display lanes and
// orders each by deadline. The split is a derived, transient view: the
// collection itself carries no ordering.
package board

import (
	"sort"

	"github.com/vanderheijden86/taskdeck/pkg/model"
)

// Lane identifies one of the two task groupings.
type Lane int

const (
	LaneBacklog Lane = iota
	LaneSprint
)

// String returns the display name of the lane.
func (l Lane) String() string {
	if l == LaneSprint {
		return "Sprint"
	}
	return "Backlog"
}

// IsSprint reports whether this lane holds in-sprint tasks.
func (l Lane) IsSprint() bool {
	return l == LaneSprint
}

// Other returns the opposite lane.
func (l Lane) Other() Lane {
	if l == LaneSprint {
		return LaneBacklog
	}
	return LaneSprint
}

// Partition stable-partitions tasks by sprint membership, then sorts
// each lane by deadline ascending with deadline-less tasks last. Tasks
// the comparator considers unordered (equal deadlines, or both absent)
// keep their relative input order, so the sort must be stable.
func Partition(tasks []model.Task) (backlog, sprint []model.Task) {
	backlog = make([]model.Task, 0, len(tasks))
	sprint = make([]model.Task, 0)
	for _, t := range tasks {
		if t.InSprint {
			sprint = append(sprint, t)
		} else {
			backlog = append(backlog, t)
		}
	}
	sortByDeadline(backlog)
	sortByDeadline(sprint)
	return backlog, sprint
}

// sortByDeadline orders tasks by deadline ascending, deadline-less
// last. ISO dates compare correctly as strings, so no parsing needed.
func sortByDeadline(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].HasDeadline(), tasks[j].HasDeadline()
		switch {
		case di && dj:
			return *tasks[i].Deadline < *tasks[j].Deadline
		case di:
			return true // deadline sorts before no-deadline
		default:
			return false
		}
	})
}
