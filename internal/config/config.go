package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal container images

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	LeetCodeURL        string
	LeetCodeReferer    string
	SessionCookie      string
	CSRFToken          string
	Username           string
	SubmissionLimit    int
	ExcludeEasy        bool
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	GoogleRedirectURI  string
	CalendarID         string
	TimeZone           string
	ReminderOffsets    []int
	ReminderHour       int
	ReminderMinute     int
	ReminderDuration   time.Duration
	LabelMatchMode     string
	DiscordWebhookURL  string
	ScheduleCron       string
	RequestTimeout     time.Duration
	LogFormat          string
	LogLevel           string
}

const (
	defaultLeetCodeURL      = "https://leetcode.com/graphql/"
	defaultLeetCodeReferer  = "https://leetcode.com"
	defaultSubmissionLimit  = 50
	defaultRedirectURI      = "http://localhost:3000/oauth2callback"
	defaultCalendarID       = "primary"
	defaultTimeZone         = "Asia/Kolkata"
	defaultOffsets          = "3,7,15"
	defaultReminderHour     = 21
	defaultReminderMinute   = 30
	defaultReminderDuration = 30 * time.Minute
	defaultMatchMode        = "substring"
	defaultTimeout          = 30 * time.Second
	defaultLogFormat        = "json"
	defaultLogLevel         = "info"
)

// Load builds a Config from environment variables with sane defaults.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	cfg, err := LoadAuth()
	if err != nil {
		return nil, err
	}
	cfg.LeetCodeURL = getenvDefault("LEETCODE_GRAPHQL_URL", defaultLeetCodeURL)
	cfg.LeetCodeReferer = getenvDefault("LEETCODE_REFERER", defaultLeetCodeReferer)
	cfg.SessionCookie = os.Getenv("LEETCODE_SESSION_COOKIE")
	cfg.CSRFToken = os.Getenv("LEETCODE_CSRF_TOKEN")
	cfg.Username = os.Getenv("LEETCODE_USERNAME")
	cfg.SubmissionLimit = parseIntDefault("SUBMISSION_LIMIT", defaultSubmissionLimit)
	cfg.ExcludeEasy = parseBoolDefault("EXCLUDE_EASY", true)
	cfg.CalendarID = getenvDefault("GOOGLE_CALENDAR_ID", defaultCalendarID)
	cfg.TimeZone = getenvDefault("TIMEZONE", defaultTimeZone)
	cfg.ReminderHour = parseIntDefault("REMINDER_HOUR", defaultReminderHour)
	cfg.ReminderMinute = parseIntDefault("REMINDER_MINUTE", defaultReminderMinute)
	cfg.ReminderDuration = parseDurationDefault("REMINDER_DURATION", defaultReminderDuration)
	cfg.LabelMatchMode = strings.ToLower(getenvDefault("LABEL_MATCH_MODE", defaultMatchMode))
	cfg.DiscordWebhookURL = os.Getenv("DISCORD_WEBHOOK_URL")
	cfg.ScheduleCron = os.Getenv("SCHEDULE_CRON")
	cfg.RequestTimeout = parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout)
	cfg.LogFormat = getenvDefault("LOG_FORMAT", defaultLogFormat)
	cfg.LogLevel = getenvDefault("LOG_LEVEL", defaultLogLevel)

	offsets, err := parseOffsets(getenvDefault("REMINDER_OFFSETS", defaultOffsets))
	if err != nil {
		return nil, err
	}
	cfg.ReminderOffsets = offsets

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.SubmissionLimit <= 0 {
		cfg.SubmissionLimit = defaultSubmissionLimit
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReminderDuration <= 0 {
		cfg.ReminderDuration = defaultReminderDuration
	}

	return cfg, nil
}

// LoadAuth reads only the Google OAuth client settings used by the
// authorization bootstrap command.
func LoadAuth() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return &Config{
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		GoogleRedirectURI:  getenvDefault("GOOGLE_REDIRECT_URI", defaultRedirectURI),
	}, nil
}

func (c *Config) validate() error {
	var missing []string
	for name, val := range map[string]string{
		"LEETCODE_SESSION_COOKIE": c.SessionCookie,
		"LEETCODE_CSRF_TOKEN":     c.CSRFToken,
		"LEETCODE_USERNAME":       c.Username,
		"GOOGLE_CLIENT_ID":        c.GoogleClientID,
		"GOOGLE_CLIENT_SECRET":    c.GoogleClientSecret,
		"GOOGLE_REFRESH_TOKEN":    c.GoogleRefreshToken,
	} {
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.TimeZone, err)
	}
	if c.ReminderHour < 0 || c.ReminderHour > 23 || c.ReminderMinute < 0 || c.ReminderMinute > 59 {
		return fmt.Errorf("invalid reminder time %02d:%02d", c.ReminderHour, c.ReminderMinute)
	}
	if c.LabelMatchMode != "substring" && c.LabelMatchMode != "line" {
		return fmt.Errorf("LABEL_MATCH_MODE must be substring or line, got %q", c.LabelMatchMode)
	}
	return nil
}

// parseOffsets parses a comma separated list of positive day offsets,
// returning them sorted ascending without duplicates.
func parseOffsets(raw string) ([]int, error) {
	seen := map[int]struct{}{}
	var offsets []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("REMINDER_OFFSETS: invalid offset %q", part)
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		offsets = append(offsets, n)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("REMINDER_OFFSETS is empty")
	}
	sort.Ints(offsets)
	return offsets, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseBoolDefault(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
