package ui

import (
	"github.com/vanderheijden86/taskdeck/pkg/board"
)

// grabState tracks the pick-up-and-move interaction for relocating a task
// between the backlog and sprint lanes. A task is grabbed in place, the
// target lane is chosen with the lane-switch keys, and the drop either
// submits a sprint-membership change or cancels when nothing would move.
type grabState struct {
	active     bool
	taskID     int64
	sourceLane board.Lane
	targetLane board.Lane
}

// Grab picks up the task under the cursor.
func (g *grabState) Grab(id int64, lane board.Lane) {
	g.active = true
	g.taskID = id
	g.sourceLane = lane
	g.targetLane = lane
}

// Retarget points the pending drop at a lane.
func (g *grabState) Retarget(lane board.Lane) {
	if g.active {
		g.targetLane = lane
	}
}

// Drop ends the interaction. It returns the drop target and true when the
// task actually changes lanes; a same-lane drop is a cancel and must not
// produce a network call.
func (g *grabState) Drop() (id int64, toSprint bool, moved bool) {
	if !g.active {
		return 0, false, false
	}
	id = g.taskID
	toSprint = g.targetLane.IsSprint()
	moved = g.targetLane != g.sourceLane
	g.Reset()
	return id, toSprint, moved
}

// Reset cancels any in-flight grab.
func (g *grabState) Reset() {
	*g = grabState{}
}

// Holding reports whether the given task is currently grabbed.
func (g grabState) Holding(id int64) bool {
	return g.active && g.taskID == id
}
