package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// SelectorConfig controls which submissions become revision labels.
type SelectorConfig struct {
	Username    string
	Limit       int
	ExcludeEasy bool
	Location    *time.Location
}

// SubmissionSelector turns a user's recent accepted submissions into the
// labels of problems solved on the previous calendar day.
type SubmissionSelector struct {
	provider ports.SubmissionProvider
	clock    ports.Clock
	logger   ports.Logger
	cfg      SelectorConfig
}

// NewSubmissionSelector constructs a SubmissionSelector.
func NewSubmissionSelector(provider ports.SubmissionProvider, clock ports.Clock, logger ports.Logger, cfg SelectorConfig) *SubmissionSelector {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &SubmissionSelector{
		provider: provider,
		clock:    clock,
		logger:   logger,
		cfg:      cfg,
	}
}

// Labels fetches submissions and returns the labels solved yesterday.
// Filtering, rendering and deduplication happen lazily as the sequence is
// consumed; each iteration starts from a fresh dedup set.
func (s *SubmissionSelector) Labels(ctx context.Context, catalog model.Catalog) (iter.Seq[string], error) {
	subs, err := s.provider.RecentAcceptedSubmissions(ctx, s.cfg.Username, s.cfg.Limit)
	if err != nil {
		if errors.Is(err, ports.ErrSessionExpired) {
			s.logger.Warn(ctx, "⚠️ Authentication failed. Cookie may have expired.", "username", s.cfg.Username)
			return nil, err
		}
		return nil, fmt.Errorf("fetch submissions: %w", err)
	}

	from, to := DayWindow(s.clock.Now(), s.cfg.Location)
	return yesterdayLabels(subs, catalog, from, to, s.cfg.ExcludeEasy), nil
}

// Select is Labels collected into a slice.
func (s *SubmissionSelector) Select(ctx context.Context, catalog model.Catalog) ([]string, error) {
	seq, err := s.Labels(ctx, catalog)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// DayWindow returns [start of yesterday, start of today) for now in loc.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	yesterday := time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, loc)
	return yesterday, today
}

func yesterdayLabels(subs []model.Submission, catalog model.Catalog, from, to time.Time, excludeEasy bool) iter.Seq[string] {
	lo, hi := from.Unix(), to.Unix()
	return func(yield func(string) bool) {
		seen := make(map[string]struct{}, len(subs))
		for _, sub := range subs {
			if sub.Timestamp < lo || sub.Timestamp >= hi {
				continue
			}
			if excludeEasy {
				if rec, ok := catalog.Lookup(sub.Slug); ok && rec.Difficulty == model.DifficultyEasy {
					continue
				}
			}

			label := model.RenderLabel(catalog, sub)
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}

			if !yield(label) {
				return
			}
		}
	}
}
