package model

import "time"

const (
	// ReminderSummary is the title of every revision event.
	ReminderSummary = "LeetCode Revision"
	// ReminderColorID is the Google Calendar color ("banana" yellow).
	ReminderColorID = "5"
)

// CalendarEvent is a transport-agnostic calendar event.
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	ColorID     string
}

// EventQuery selects events overlapping [From, To] whose text matches Text.
type EventQuery struct {
	From time.Time
	To   time.Time
	Text string
}

// ScheduleState is the terminal state of one offset's scheduling.
type ScheduleState string

const (
	StateCreated ScheduleState = "created"
	StateUpdated ScheduleState = "updated"
	StateSkipped ScheduleState = "skipped"
	StateFailed  ScheduleState = "failed"
)

// ScheduleOutcome records what happened for a single reminder offset.
type ScheduleOutcome struct {
	Offset int
	Target time.Time
	State  ScheduleState
	Added  []string
	Err    error
}

// RunReport summarises a revision run.
type RunReport struct {
	Labels   []string
	Outcomes []ScheduleOutcome
}

// Failed reports how many offsets failed.
func (r RunReport) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == StateFailed {
			n++
		}
	}
	return n
}
