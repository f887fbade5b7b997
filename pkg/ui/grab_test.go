package ui

import (
	"testing"

	"github.com/vanderheijden86/taskdeck/pkg/board"
)

func TestGrabState_SameLaneDropCancels(t *testing.T) {
	var g grabState
	g.Grab(7, board.LaneBacklog)

	id, toSprint, moved := g.Drop()
	if moved {
		t.Error("same-lane drop should not count as a move")
	}
	if id != 7 {
		t.Errorf("id=%d; want 7", id)
	}
	if toSprint {
		t.Error("drop target should be the backlog")
	}
	if g.active {
		t.Error("grab should be released after drop")
	}
}

func TestGrabState_CrossLaneDropMoves(t *testing.T) {
	var g grabState
	g.Grab(3, board.LaneBacklog)
	g.Retarget(board.LaneSprint)

	id, toSprint, moved := g.Drop()
	if !moved {
		t.Fatal("cross-lane drop should move")
	}
	if id != 3 || !toSprint {
		t.Errorf("drop = (%d, %v); want (3, true)", id, toSprint)
	}
}

func TestGrabState_RetargetBackAndForth(t *testing.T) {
	var g grabState
	g.Grab(5, board.LaneSprint)
	g.Retarget(board.LaneBacklog)
	g.Retarget(board.LaneSprint)

	_, _, moved := g.Drop()
	if moved {
		t.Error("returning to the source lane before dropping should cancel")
	}
}

func TestGrabState_RetargetWhenIdleIsIgnored(t *testing.T) {
	var g grabState
	g.Retarget(board.LaneSprint)
	if g.active {
		t.Error("retarget must not activate an idle grab")
	}
}

func TestGrabState_Holding(t *testing.T) {
	var g grabState
	if g.Holding(1) {
		t.Error("idle grab holds nothing")
	}
	g.Grab(1, board.LaneBacklog)
	if !g.Holding(1) {
		t.Error("expected to hold task 1")
	}
	if g.Holding(2) {
		t.Error("should not hold task 2")
	}
	g.Reset()
	if g.Holding(1) {
		t.Error("reset should release the task")
	}
}
