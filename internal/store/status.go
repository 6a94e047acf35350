package store

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label of a task. Any status may follow any other.
type Status int

const (
	StatusBacklog Status = iota
	StatusInProgress
	StatusDone
)

// AllStatuses returns the statuses in selector order.
func AllStatuses() []Status {
	return []Status{StatusBacklog, StatusInProgress, StatusDone}
}

func (s Status) String() string {
	switch s {
	case StatusBacklog:
		return "Backlog"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s >= StatusBacklog && s <= StatusDone
}

// Next returns the following status, wrapping from Done to Backlog.
func (s Status) Next() Status {
	all := AllStatuses()
	return all[(s.index()+1)%len(all)]
}

// Prev returns the preceding status, wrapping from Backlog to Done.
func (s Status) Prev() Status {
	all := AllStatuses()
	return all[(s.index()+len(all)-1)%len(all)]
}

func (s Status) index() int {
	if !s.Valid() {
		return 0
	}
	return int(s)
}

// ParseStatus accepts display labels case-insensitively, plus the compact
// forms "inprogress", "in_progress" and "in-progress".
func ParseStatus(raw string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	switch norm {
	case "backlog":
		return StatusBacklog, nil
	case "in progress", "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return StatusBacklog, fmt.Errorf("unknown status %q", raw)
}
