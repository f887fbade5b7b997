package filter_test

import (
	"reflect"
	"testing"

	"github.com/vanderheijden86/taskdeck/pkg/filter"
	"github.com/vanderheijden86/taskdeck/pkg/model"

	"pgregory.net/rapid"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "API pagination", Project: "Backend", Assignee: "ana", Tags: []string{"api"}, Status: model.StatusTodo},
		{ID: 2, Title: "Login flow", Project: "Frontend", Assignee: "ben", Tags: []string{"auth", "ui"}, Status: model.StatusInProgress},
		{ID: 3, Title: "Patch CVE", Project: "Backend", Assignee: "ana", Tags: []string{"security"}, Status: model.StatusDone},
		{ID: 4, Title: "Retro notes", Project: model.DefaultProject, Assignee: model.DefaultAssignee, Status: model.StatusBlocked},
	}
}

func TestDeriveOptionsInjectsSentinels(t *testing.T) {
	opts := filter.DeriveOptions([]model.Task{
		{ID: 1, Project: "Zeta", Assignee: "zoe"},
	})
	if !contains(opts.Projects, model.DefaultProject) {
		t.Errorf("projects %v missing sentinel %q", opts.Projects, model.DefaultProject)
	}
	if !contains(opts.Assignees, model.DefaultAssignee) {
		t.Errorf("assignees %v missing sentinel %q", opts.Assignees, model.DefaultAssignee)
	}
}

func TestDeriveOptionsSortedAndDeduplicated(t *testing.T) {
	opts := filter.DeriveOptions(sampleTasks())
	wantProjects := []string{"Backend", "Frontend", "General"}
	if !reflect.DeepEqual(opts.Projects, wantProjects) {
		t.Errorf("projects = %v, want %v", opts.Projects, wantProjects)
	}
	wantTags := []string{"api", "auth", "security", "ui"}
	if !reflect.DeepEqual(opts.Tags, wantTags) {
		t.Errorf("tags = %v, want %v", opts.Tags, wantTags)
	}
}

func TestDeriveOptionsEmptyCollection(t *testing.T) {
	opts := filter.DeriveOptions(nil)
	if !reflect.DeepEqual(opts.Projects, []string{model.DefaultProject}) {
		t.Errorf("projects = %v, want just the sentinel", opts.Projects)
	}
	if !reflect.DeepEqual(opts.Assignees, []string{model.DefaultAssignee}) {
		t.Errorf("assignees = %v, want just the sentinel", opts.Assignees)
	}
	if len(opts.Tags) != 0 {
		t.Errorf("tags = %v, want empty", opts.Tags)
	}
	if !reflect.DeepEqual(opts.Statuses, model.StatusLabels()) {
		t.Errorf("statuses = %v, want full label list", opts.Statuses)
	}
}

func TestApplyEmptySelectionIsIdentity(t *testing.T) {
	tasks := sampleTasks()
	got := filter.Apply(tasks, filter.NewSelection())
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("empty selection changed the sequence:\n got %v\nwant %v", got, tasks)
	}
}

func TestApplyANDAcrossDimensions(t *testing.T) {
	sel := filter.NewSelection()
	sel.Projects["Backend"] = true
	sel.Statuses[model.StatusDone.Label()] = true

	got := filter.Apply(sampleTasks(), sel)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("got %v, want only task 3", ids(got))
	}
}

func TestApplyORWithinDimension(t *testing.T) {
	sel := filter.NewSelection()
	sel.Tags["api"] = true
	sel.Tags["auth"] = true

	got := filter.Apply(sampleTasks(), sel)
	if !reflect.DeepEqual(ids(got), []int64{1, 2}) {
		t.Errorf("got %v, want [1 2]", ids(got))
	}
}

func TestApplyStatusMatchesByLabel(t *testing.T) {
	sel := filter.NewSelection()
	sel.Statuses["In Progress"] = true

	got := filter.Apply(sampleTasks(), sel)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("got %v, want only task 2", ids(got))
	}

	// Machine values must not match: the panel surfaces labels only.
	sel = filter.NewSelection()
	sel.Statuses["in_progress"] = true
	if got := filter.Apply(sampleTasks(), sel); len(got) != 0 {
		t.Errorf("machine value matched %v tasks, want 0", ids(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		sel := genSelection(t)

		once := filter.Apply(tasks, sel)
		twice := filter.Apply(once, sel)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("not idempotent:\n once %v\ntwice %v", ids(once), ids(twice))
		}
	})
}

func TestApplyPreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		sel := genSelection(t)

		got := filter.Apply(tasks, sel)
		// Order-preserving subsequence: walk the input and expect the
		// output to follow it.
		i := 0
		for _, task := range tasks {
			if i < len(got) && got[i].ID == task.ID {
				i++
			}
		}
		if i != len(got) {
			t.Fatalf("output %v is not a subsequence of input %v", ids(got), ids(tasks))
		}
	})
}

func genTasks(t *rapid.T) []model.Task {
	projects := []string{"General", "Backend", "Frontend"}
	assignees := []string{"Unassigned", "ana", "ben"}
	tagPool := []string{"api", "ui", "bug", "urgent"}
	statuses := model.AllStatuses()

	n := rapid.IntRange(0, 12).Draw(t, "n")
	tasks := make([]model.Task, n)
	for i := range tasks {
		tasks[i] = model.Task{
			ID:       int64(i + 1),
			Title:    "task",
			Project:  rapid.SampledFrom(projects).Draw(t, "project"),
			Assignee: rapid.SampledFrom(assignees).Draw(t, "assignee"),
			Tags:     rapid.SliceOfNDistinct(rapid.SampledFrom(tagPool), 0, 3, rapid.ID[string]).Draw(t, "tags"),
			Status:   rapid.SampledFrom(statuses).Draw(t, "status"),
		}
	}
	return tasks
}

func genSelection(t *rapid.T) filter.Selection {
	sel := filter.NewSelection()
	for _, p := range rapid.SliceOfNDistinct(rapid.SampledFrom([]string{"General", "Backend"}), 0, 2, rapid.ID[string]).Draw(t, "selProjects") {
		sel.Projects[p] = true
	}
	for _, tag := range rapid.SliceOfNDistinct(rapid.SampledFrom([]string{"api", "bug"}), 0, 2, rapid.ID[string]).Draw(t, "selTags") {
		sel.Tags[tag] = true
	}
	if rapid.Bool().Draw(t, "withStatus") {
		sel.Statuses[model.StatusTodo.Label()] = true
	}
	return sel
}

func ids(tasks []model.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
