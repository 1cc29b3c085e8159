package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// MatchMode decides when a label already counts as recorded in a description.
type MatchMode string

const (
	// MatchSubstring treats a label as present if it occurs anywhere in the description.
	MatchSubstring MatchMode = "substring"
	// MatchLine requires a description line equal to the label.
	MatchLine MatchMode = "line"
)

const (
	blockDateLayout = "02-01-2006"
	searchPadding   = time.Hour
)

// SchedulerConfig describes where reminders land on the calendar.
type SchedulerConfig struct {
	Offsets   []int
	Hour      int
	Minute    int
	Duration  time.Duration
	Location  *time.Location
	MatchMode MatchMode
}

// ReminderScheduler creates or extends one revision event per offset.
type ReminderScheduler struct {
	calendar ports.Calendar
	clock    ports.Clock
	logger   ports.Logger
	cfg      SchedulerConfig
}

// NewReminderScheduler constructs a ReminderScheduler.
func NewReminderScheduler(calendar ports.Calendar, clock ports.Clock, logger ports.Logger, cfg SchedulerConfig) *ReminderScheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 30 * time.Minute
	}
	if cfg.MatchMode == "" {
		cfg.MatchMode = MatchSubstring
	}
	return &ReminderScheduler{
		calendar: calendar,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
	}
}

// Schedule processes every offset in order. A failing offset is logged and
// recorded; the remaining offsets still run.
func (s *ReminderScheduler) Schedule(ctx context.Context, labels []string) []model.ScheduleOutcome {
	anchor := AnchorTime(s.clock.Now(), s.cfg.Location, s.cfg.Hour, s.cfg.Minute)

	outcomes := make([]model.ScheduleOutcome, 0, len(s.cfg.Offsets))
	for _, offset := range s.cfg.Offsets {
		outcome := s.scheduleOffset(ctx, anchor, offset, labels)
		if outcome.Err != nil {
			s.logger.Error(ctx, "❌ failed to schedule reminder",
				"date", outcome.Target.Format(time.DateOnly),
				"offset", offset,
				"error", outcome.Err)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (s *ReminderScheduler) scheduleOffset(ctx context.Context, anchor time.Time, offset int, labels []string) model.ScheduleOutcome {
	start := anchor.AddDate(0, 0, offset)
	end := start.Add(s.cfg.Duration)
	date := start.Format(time.DateOnly)
	outcome := model.ScheduleOutcome{Offset: offset, Target: start, State: model.StateFailed}

	events, err := s.calendar.SearchEvents(ctx, model.EventQuery{
		From: start.Add(-searchPadding),
		To:   end.Add(searchPadding),
		Text: model.ReminderSummary,
	})
	if err != nil {
		outcome.Err = err
		return outcome
	}

	existing, found := findReminder(events)
	if !found {
		s.logger.Info(ctx, "ℹ️ no existing event, creating", "date", date)
		_, err := s.calendar.CreateEvent(ctx, model.CalendarEvent{
			Summary:     model.ReminderSummary,
			Description: NewDescription(anchor, labels),
			Start:       start,
			End:         end,
			TimeZone:    s.cfg.Location.String(),
			ColorID:     model.ReminderColorID,
		})
		if err != nil {
			outcome.Err = err
			return outcome
		}
		s.logger.Info(ctx, "✅ created event", "date", date, "problems", len(labels))
		outcome.State = model.StateCreated
		outcome.Added = labels
		return outcome
	}

	added := NewLabels(existing.Description, labels, s.cfg.MatchMode)
	if len(added) == 0 {
		s.logger.Info(ctx, "⚠️ no new problems to add", "date", date, "event", existing.ID)
		outcome.State = model.StateSkipped
		return outcome
	}

	s.logger.Info(ctx, "ℹ️ existing event found, updating", "date", date, "event", existing.ID)
	if err := s.calendar.PatchDescription(ctx, existing.ID, AppendBlock(existing.Description, anchor, added)); err != nil {
		outcome.Err = err
		return outcome
	}
	s.logger.Info(ctx, "✅ updated event", "date", date, "added", len(added))
	outcome.State = model.StateUpdated
	outcome.Added = added
	return outcome
}

// findReminder picks the event whose summary is exactly the reminder title;
// the search text alone also matches longer titles.
func findReminder(events []model.CalendarEvent) (model.CalendarEvent, bool) {
	for _, e := range events {
		if e.Summary == model.ReminderSummary {
			return e, true
		}
	}
	return model.CalendarEvent{}, false
}

// AnchorTime is yesterday's date in loc at hour:minute.
func AnchorTime(now time.Time, loc *time.Location, hour, minute int) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-1, hour, minute, 0, 0, loc)
}

// NewLabels returns the labels not yet recorded in description, in input order.
func NewLabels(description string, labels []string, mode MatchMode) []string {
	present := func(label string) bool { return strings.Contains(description, label) }
	if mode == MatchLine {
		lines := make(map[string]struct{})
		for _, line := range strings.Split(description, "\n") {
			lines[strings.TrimSpace(line)] = struct{}{}
		}
		present = func(label string) bool {
			_, ok := lines[strings.TrimSpace(label)]
			return ok
		}
	}

	var added []string
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup || present(label) {
			continue
		}
		seen[label] = struct{}{}
		added = append(added, label)
	}
	return added
}

// NewDescription renders a fresh description holding one dated block.
func NewDescription(anchor time.Time, labels []string) string {
	return fmt.Sprintf("Problems solved on %s:\n%s", anchor.Format(blockDateLayout), strings.Join(labels, "\n"))
}

// AppendBlock appends a dated block of labels to an existing description.
func AppendBlock(description string, anchor time.Time, labels []string) string {
	if description == "" {
		return NewDescription(anchor, labels)
	}
	return description + "\n\n" + NewDescription(anchor, labels)
}
