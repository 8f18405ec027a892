package stats

import (
	"fmt"
	"time"
)

// Status is the lifecycle label shown for a dated competition.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Statuses lists every Status in display order.
var Statuses = []Status{StatusActive, StatusUpcoming, StatusCompleted}

// ParseStatus accepts the lowercase wire form.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusUpcoming, StatusActive, StatusCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Classify derives the status. The explicit active flag beats any date check;
// a past end date means completed, a future start date means upcoming, and
// anything else falls back to upcoming. Nil dates impose no constraint.
func Classify(active bool, start, end *time.Time, now time.Time) Status {
	switch {
	case active:
		return StatusActive
	case end != nil && end.Before(now):
		return StatusCompleted
	case start != nil && start.After(now):
		return StatusUpcoming
	default:
		return StatusUpcoming
	}
}

// Color maps the status onto its badge color.
func (s Status) Color() Color {
	switch s {
	case StatusActive:
		return ColorSuccess
	case StatusCompleted:
		return ColorNeutral
	default:
		return ColorWarning
	}
}
