package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"leetcode-revision/internal/adapter/clock"
	"leetcode-revision/internal/adapter/discord"
	"leetcode-revision/internal/adapter/gcal"
	"leetcode-revision/internal/adapter/leetcode"
	"leetcode-revision/internal/adapter/logging"
	"leetcode-revision/internal/config"
	"leetcode-revision/internal/domain/ports"
	"leetcode-revision/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewSlog(os.Stdout, cfg.LogFormat, cfg.LogLevel)
}

func provideClock() ports.Clock {
	return clock.System{}
}

func provideLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}
	return loc, nil
}

func provideLeetCodeClient(cfg *config.Config, logger ports.Logger) *leetcode.Client {
	return leetcode.New(cfg.LeetCodeURL, cfg.LeetCodeReferer, leetcode.Credentials{
		SessionCookie: cfg.SessionCookie,
		CSRFToken:     cfg.CSRFToken,
	}, cfg.RequestTimeout, logger)
}

func provideCalendar(cfg *config.Config, logger ports.Logger) (ports.Calendar, error) {
	return gcal.New(context.Background(), gcal.Credentials{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RefreshToken: cfg.GoogleRefreshToken,
		RedirectURL:  cfg.GoogleRedirectURI,
	}, cfg.CalendarID, cfg.RequestTimeout, logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideSelectorConfig(cfg *config.Config, loc *time.Location) usecase.SelectorConfig {
	return usecase.SelectorConfig{
		Username:    cfg.Username,
		Limit:       cfg.SubmissionLimit,
		ExcludeEasy: cfg.ExcludeEasy,
		Location:    loc,
	}
}

func provideSchedulerConfig(cfg *config.Config, loc *time.Location) usecase.SchedulerConfig {
	return usecase.SchedulerConfig{
		Offsets:   cfg.ReminderOffsets,
		Hour:      cfg.ReminderHour,
		Minute:    cfg.ReminderMinute,
		Duration:  cfg.ReminderDuration,
		Location:  loc,
		MatchMode: usecase.MatchMode(cfg.LabelMatchMode),
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.ScheduleCron
}
