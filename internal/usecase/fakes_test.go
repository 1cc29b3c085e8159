package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"leetcode-revision/internal/adapter/clock"
	"leetcode-revision/internal/domain/model"
)

// frozenNow is 15:30 IST on 10 Jan 2025, so "yesterday" is 9 Jan.
var frozenNow = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

var (
	istOnce sync.Once
	istLoc  *time.Location
	istErr  error
)

// ist returns a single shared location so times compare deeply equal.
func ist(t *testing.T) *time.Location {
	t.Helper()
	istOnce.Do(func() { istLoc, istErr = time.LoadLocation("Asia/Kolkata") })
	if istErr != nil {
		t.Fatalf("load location: %v", istErr)
	}
	return istLoc
}

func frozenClock() clock.Fixed { return clock.Fixed(frozenNow) }

type logEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Info(_ context.Context, msg string, args ...any) {
	l.add("info", msg, args)
}

func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any) {
	l.add("warn", msg, args)
}

func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) {
	l.add("error", msg, args)
}

func (l *recordingLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) byLevel(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

type fakeCatalog struct {
	catalog model.Catalog
	err     error
	calls   int
}

func (f *fakeCatalog) FetchCatalog(context.Context) (model.Catalog, error) {
	f.calls++
	return f.catalog, f.err
}

type fakeSubmissions struct {
	subs     []model.Submission
	err      error
	calls    int
	username string
	limit    int
}

func (f *fakeSubmissions) RecentAcceptedSubmissions(_ context.Context, username string, limit int) ([]model.Submission, error) {
	f.calls++
	f.username = username
	f.limit = limit
	return f.subs, f.err
}

type patchCall struct {
	id          string
	description string
}

// fakeCalendar keeps events in memory and counts every call.
type fakeCalendar struct {
	events  []model.CalendarEvent
	queries []model.EventQuery
	creates []model.CalendarEvent
	patches []patchCall

	searchErr map[string]error // keyed by target date (YYYY-MM-DD)
	createErr error
	patchErr  error
	nextID    int
}

func (f *fakeCalendar) SearchEvents(_ context.Context, q model.EventQuery) ([]model.CalendarEvent, error) {
	f.queries = append(f.queries, q)
	if err, ok := f.searchErr[q.From.Add(time.Hour).Format(time.DateOnly)]; ok {
		return nil, err
	}
	var out []model.CalendarEvent
	for _, e := range f.events {
		if e.End.Before(q.From) || e.Start.After(q.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, e model.CalendarEvent) (string, error) {
	f.creates = append(f.creates, e)
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	e.ID = fmt.Sprintf("evt-%d", f.nextID)
	f.events = append(f.events, e)
	return e.ID, nil
}

func (f *fakeCalendar) PatchDescription(_ context.Context, id, description string) error {
	f.patches = append(f.patches, patchCall{id: id, description: description})
	if f.patchErr != nil {
		return f.patchErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			f.events[i].Description = description
			return nil
		}
	}
	return fmt.Errorf("event %s not found", id)
}

func (f *fakeCalendar) calls() int {
	return len(f.queries) + len(f.creates) + len(f.patches)
}
