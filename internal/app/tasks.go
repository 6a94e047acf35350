package app

import (
	"github.com/jask/tablekeep/internal/store"
)

const (
	msgTaskInvalid     = "Please enter a task and select its status."
	msgTaskNoSelection = "Please select a task to edit."
	msgTaskUnchanged   = "Task status unchanged."
)

// AddTask appends a task with the selector's current status.
func (a *App) AddTask(description string, status store.Status) Result {
	t, err := a.Tasks.Add(description, status)
	if err != nil {
		a.log.Warn("add task rejected", "error", err)
		return Result{Outcome: outcomeOf(err), Message: msgTaskInvalid}
	}
	a.log.Info("task added", "row", a.Tasks.Len()-1, "status", t.Status.String())
	return Result{Outcome: OutcomeOK, Message: "Added task: " + t.Description}
}

// EditTask runs e against the task at index.
func (a *App) EditTask(index int, e store.StatusEditor) Result {
	t, err := a.Tasks.Edit(index, e)
	return a.editResult(index, t, err)
}

// ApplyTaskStatus is the apply half of the edit flow, used when the editor
// reports back asynchronously.
func (a *App) ApplyTaskStatus(index int, s store.Status) Result {
	t, err := a.Tasks.SetStatus(index, s)
	return a.editResult(index, t, err)
}

func (a *App) editResult(index int, t store.Task, err error) Result {
	outcome := outcomeOf(err)
	switch outcome {
	case OutcomeOK:
		a.log.Info("task status updated", "row", index, "status", t.Status.String())
		return Result{Outcome: outcome, Message: "Task status updated to: " + t.Status.String()}
	case OutcomeCancelled:
		a.log.Info("task edit cancelled", "row", index)
		return Result{Outcome: outcome, Message: msgTaskUnchanged}
	case OutcomeNoSelection:
		a.log.Warn("edit task rejected", "row", index, "error", err)
		return Result{Outcome: outcome, Message: msgTaskNoSelection}
	default:
		a.log.Warn("edit task rejected", "row", index, "error", err)
		return Result{Outcome: outcome, Message: msgTaskInvalid}
	}
}
