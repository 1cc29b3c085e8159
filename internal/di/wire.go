//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leetcode-revision/internal/adapter/leetcode"
	"leetcode-revision/internal/adapter/logging"
	"leetcode-revision/internal/app"
	"leetcode-revision/internal/config"
	"leetcode-revision/internal/domain/ports"
	"leetcode-revision/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideClock,
		provideLocation,
		provideLeetCodeClient,
		wire.Bind(new(ports.CatalogProvider), new(*leetcode.Client)),
		wire.Bind(new(ports.SubmissionProvider), new(*leetcode.Client)),
		provideCalendar,
		provideNotifier,
		provideSelectorConfig,
		provideSchedulerConfig,
		usecase.NewSubmissionSelector,
		usecase.NewReminderScheduler,
		usecase.NewRevisionJob,
		wire.Bind(new(app.Job), new(*usecase.RevisionJob)),
		provideSchedule,
		app.New,
	)
	return nil, nil
}
