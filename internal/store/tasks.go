package store

import "strings"

// Task is a single entry on a TaskBoard. Only Status changes after creation.
type Task struct {
	Description string
	Status      Status
}

// TaskBoard is an ordered, position-indexed list of tasks. Tasks are never removed.
// It is not safe for concurrent use.
type TaskBoard struct {
	items []Task
}

func NewTaskBoard() *TaskBoard {
	return &TaskBoard{}
}

// Add appends a task with the given status.
func (b *TaskBoard) Add(description string, status Status) (Task, error) {
	description = strings.TrimSpace(description)
	var invalid []string
	if description == "" {
		invalid = append(invalid, "description")
	}
	if !status.Valid() {
		invalid = append(invalid, "status")
	}
	if len(invalid) > 0 {
		return Task{}, &ValidationError{Fields: invalid}
	}
	t := Task{Description: description, Status: status}
	b.items = append(b.items, t)
	return t, nil
}

// Edit runs e seeded with the current status of the task at index and
// applies the result if the editor saved.
func (b *TaskBoard) Edit(index int, e StatusEditor) (Task, error) {
	if index < 0 || index >= len(b.items) {
		return Task{}, ErrNoSelection
	}
	if e == nil {
		return Task{}, ErrCancelled
	}
	next, saved := e.EditStatus(b.items[index].Status)
	if !saved {
		return Task{}, ErrCancelled
	}
	return b.SetStatus(index, next)
}

// SetStatus replaces the status of the task at index.
func (b *TaskBoard) SetStatus(index int, s Status) (Task, error) {
	if index < 0 || index >= len(b.items) {
		return Task{}, ErrNoSelection
	}
	if !s.Valid() {
		return Task{}, &ValidationError{Fields: []string{"status"}}
	}
	b.items[index].Status = s
	return b.items[index], nil
}

func (b *TaskBoard) Len() int { return len(b.items) }

// At returns the task at i and whether i was in range.
func (b *TaskBoard) At(i int) (Task, bool) {
	if i < 0 || i >= len(b.items) {
		return Task{}, false
	}
	return b.items[i], true
}

// All returns a copy of the tasks in display order.
func (b *TaskBoard) All() []Task {
	out := make([]Task, len(b.items))
	copy(out, b.items)
	return out
}
