package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// RevisionJob orchestrates catalog loading, submission selection and reminder scheduling.
type RevisionJob struct {
	catalog   ports.CatalogProvider
	selector  *SubmissionSelector
	scheduler *ReminderScheduler
	notifier  ports.Notifier
	logger    ports.Logger
}

// NewRevisionJob constructs a RevisionJob. notifier may be nil.
func NewRevisionJob(
	catalog ports.CatalogProvider,
	selector *SubmissionSelector,
	scheduler *ReminderScheduler,
	notifier ports.Notifier,
	logger ports.Logger,
) *RevisionJob {
	return &RevisionJob{
		catalog:   catalog,
		selector:  selector,
		scheduler: scheduler,
		notifier:  notifier,
		logger:    logger,
	}
}

// Run executes one revision pass. The returned error is non-nil only for
// failures that should stop the process; per-offset calendar failures are
// reported in the RunReport.
func (j *RevisionJob) Run(ctx context.Context) (model.RunReport, error) {
	start := time.Now()
	j.logger.Info(ctx, "🚀 starting leetcode revision run")

	catalog := LoadCatalog(ctx, j.catalog, j.logger)

	labels, err := j.selector.Select(ctx, catalog)
	if err != nil {
		return model.RunReport{}, err
	}

	report := model.RunReport{Labels: labels}
	if len(labels) == 0 {
		j.logger.Info(ctx, "ℹ️ No problems solved yesterday.")
		return report, nil
	}

	j.logger.Info(ctx, fmt.Sprintf("🔍 Found %d problems solved yesterday", len(labels)), "problems", labels)
	report.Outcomes = j.scheduler.Schedule(ctx, labels)

	j.notify(ctx, report)
	j.logger.Info(ctx, "✅ revision run completed",
		"duration", time.Since(start),
		"failedOffsets", report.Failed())
	return report, nil
}

func (j *RevisionJob) notify(ctx context.Context, report model.RunReport) {
	if j.notifier == nil {
		return
	}
	if err := j.notifier.Send(ctx, buildNotification(report)); err != nil {
		j.logger.Error(ctx, "❌ failed to send run summary", "error", err)
	}
}

func buildNotification(report model.RunReport) model.Notification {
	fields := []model.NotificationField{{
		Name:  "Problems",
		Value: formatLabels(report.Labels),
	}}

	for _, o := range report.Outcomes {
		fields = append(fields, model.NotificationField{
			Name:   fmt.Sprintf("+%d days (%s)", o.Offset, o.Target.Format(time.DateOnly)),
			Value:  formatOutcome(o),
			Inline: true,
		})
	}

	return model.Notification{
		Title:       model.ReminderSummary,
		Description: fmt.Sprintf("Scheduled revision for %d problem(s) solved yesterday.", len(report.Labels)),
		Fields:      fields,
		Failed:      report.Failed() > 0,
	}
}

func formatLabels(labels []string) string {
	lines := make([]string, 0, len(labels))
	for _, l := range labels {
		lines = append(lines, "• "+l)
	}
	return strings.Join(lines, "\n")
}

func formatOutcome(o model.ScheduleOutcome) string {
	switch o.State {
	case model.StateCreated:
		return "✅ created"
	case model.StateUpdated:
		return fmt.Sprintf("✅ updated (+%d)", len(o.Added))
	case model.StateSkipped:
		return "⚠️ already up to date"
	default:
		if o.Err != nil {
			return "❌ " + o.Err.Error()
		}
		return "❌ failed"
	}
}
