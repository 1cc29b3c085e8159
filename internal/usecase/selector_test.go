package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

var testCatalog = model.Catalog{
	"two-sum":                       {Slug: "two-sum", NumericID: "1", Difficulty: model.DifficultyEasy},
	"add-two-numbers":               {Slug: "add-two-numbers", NumericID: "2", Difficulty: model.DifficultyMedium},
	"longest-palindromic-substring": {Slug: "longest-palindromic-substring", NumericID: "5", Difficulty: model.DifficultyHard},
}

func newSelector(t *testing.T, provider ports.SubmissionProvider, excludeEasy bool) (*SubmissionSelector, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	return NewSubmissionSelector(provider, frozenClock(), logger, SelectorConfig{
		Username:    "alice",
		Limit:       50,
		ExcludeEasy: excludeEasy,
		Location:    ist(t),
	}), logger
}

func TestDayWindow(t *testing.T) {
	loc := ist(t)
	from, to := DayWindow(frozenNow, loc)
	assert.Equal(t, time.Date(2025, 1, 9, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, loc), to)

	// 20:00 UTC on 9 Jan is already 10 Jan in IST.
	from, _ = DayWindow(time.Date(2025, 1, 9, 20, 0, 0, 0, time.UTC), loc)
	assert.Equal(t, time.Date(2025, 1, 9, 0, 0, 0, 0, loc), from)
}

func TestSelectDedupesPreservingOrder(t *testing.T) {
	ts := time.Date(2025, 1, 9, 12, 0, 0, 0, ist(t)).Unix()
	provider := &fakeSubmissions{subs: []model.Submission{
		{Title: "Add Two Numbers", Slug: "add-two-numbers", Timestamp: ts},
		{Title: "Add Two Numbers", Slug: "add-two-numbers", Timestamp: ts - 60},
		{Title: "Longest Palindrome", Slug: "longest-palindromic-substring", Timestamp: ts - 120},
	}}
	selector, _ := newSelector(t, provider, true)

	labels, err := selector.Select(context.Background(), testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"2. Add Two Numbers (Medium)", "5. Longest Palindrome (Hard)"}, labels)
	assert.Equal(t, "alice", provider.username)
	assert.Equal(t, 50, provider.limit)
}

func TestSelectDayBoundaries(t *testing.T) {
	loc := ist(t)
	startOfToday := time.Date(2025, 1, 10, 0, 0, 0, 0, loc).Unix()
	startOfYesterday := time.Date(2025, 1, 9, 0, 0, 0, 0, loc).Unix()

	provider := &fakeSubmissions{subs: []model.Submission{
		{Title: "Today", Slug: "a", Timestamp: startOfToday},
		{Title: "Last second of yesterday", Slug: "b", Timestamp: startOfToday - 1},
		{Title: "First second of yesterday", Slug: "c", Timestamp: startOfYesterday},
		{Title: "Day before", Slug: "d", Timestamp: startOfYesterday - 1},
	}}
	selector, _ := newSelector(t, provider, true)

	labels, err := selector.Select(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Last second of yesterday", "First second of yesterday"}, labels)
}

func TestSelectFallsBackToBareTitle(t *testing.T) {
	ts := time.Date(2025, 1, 9, 8, 0, 0, 0, ist(t)).Unix()
	provider := &fakeSubmissions{subs: []model.Submission{
		{Title: "Brand New Problem", Slug: "brand-new-problem", Timestamp: ts},
	}}
	selector, _ := newSelector(t, provider, true)

	labels, err := selector.Select(context.Background(), testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"Brand New Problem"}, labels)
}

func TestSelectEasyPolicy(t *testing.T) {
	ts := time.Date(2025, 1, 9, 8, 0, 0, 0, ist(t)).Unix()
	subs := []model.Submission{
		{Title: "Two Sum", Slug: "two-sum", Timestamp: ts},
		{Title: "Add Two Numbers", Slug: "add-two-numbers", Timestamp: ts},
	}

	excluding, _ := newSelector(t, &fakeSubmissions{subs: subs}, true)
	labels, err := excluding.Select(context.Background(), testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"2. Add Two Numbers (Medium)"}, labels)

	including, _ := newSelector(t, &fakeSubmissions{subs: subs}, false)
	labels, err = including.Select(context.Background(), testCatalog)
	require.NoError(t, err)
	assert.Equal(t, []string{"1. Two Sum (Easy)", "2. Add Two Numbers (Medium)"}, labels)
}

func TestLabelsIsLazyAndReiterable(t *testing.T) {
	ts := time.Date(2025, 1, 9, 8, 0, 0, 0, ist(t)).Unix()
	provider := &fakeSubmissions{subs: []model.Submission{
		{Title: "A", Slug: "a", Timestamp: ts},
		{Title: "B", Slug: "b", Timestamp: ts},
		{Title: "A", Slug: "a", Timestamp: ts},
	}}
	selector, _ := newSelector(t, provider, true)

	seq, err := selector.Labels(context.Background(), nil)
	require.NoError(t, err)

	var first []string
	for label := range seq {
		first = append(first, label)
		break
	}
	assert.Equal(t, []string{"A"}, first)

	var all []string
	for label := range seq {
		all = append(all, label)
	}
	assert.Equal(t, []string{"A", "B"}, all)
	assert.Equal(t, 1, provider.calls)
}

func TestSelectSessionExpired(t *testing.T) {
	selector, logger := newSelector(t, &fakeSubmissions{err: ports.ErrSessionExpired}, true)

	_, err := selector.Select(context.Background(), testCatalog)
	require.ErrorIs(t, err, ports.ErrSessionExpired)

	warns := logger.byLevel("warn")
	require.Len(t, warns, 1)
	assert.Equal(t, "⚠️ Authentication failed. Cookie may have expired.", warns[0].msg)
}

func TestSelectPropagatesOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	selector, logger := newSelector(t, &fakeSubmissions{err: boom}, true)

	_, err := selector.Select(context.Background(), testCatalog)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ports.ErrSessionExpired)
	assert.Empty(t, logger.byLevel("warn"))
}
