package gcal

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

// Credentials are the OAuth client settings and the long-lived refresh token
// obtained once through the authorize command.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	RedirectURL  string
}

// OAuthConfig returns the OAuth2 configuration for calendar access.
func (c Credentials) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     google.Endpoint,
		Scopes:       []string{calendar.CalendarScope},
	}
}

// Calendar implements ports.Calendar on top of the Google Calendar v3 API.
type Calendar struct {
	service    *calendar.Service
	calendarID string
	logger     ports.Logger
}

var _ ports.Calendar = (*Calendar)(nil)

// New builds a Calendar whose access tokens are refreshed from creds.
func New(ctx context.Context, creds Credentials, calendarID string, timeout time.Duration, logger ports.Logger) (*Calendar, error) {
	base := &http.Client{Timeout: timeout}
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, base)
	source := creds.OAuthConfig().TokenSource(tokenCtx, &oauth2.Token{RefreshToken: creds.RefreshToken})

	client := oauth2.NewClient(tokenCtx, source)
	client.Timeout = timeout
	return NewWithOptions(ctx, calendarID, logger, option.WithHTTPClient(client))
}

// NewWithOptions builds a Calendar from explicit client options.
func NewWithOptions(ctx context.Context, calendarID string, logger ports.Logger, opts ...option.ClientOption) (*Calendar, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Calendar{service: svc, calendarID: calendarID, logger: logger}, nil
}

// SearchEvents lists single event instances in the query window matching its text.
func (c *Calendar) SearchEvents(ctx context.Context, query model.EventQuery) ([]model.CalendarEvent, error) {
	res, err := c.service.Events.List(c.calendarID).
		TimeMin(query.From.Format(time.RFC3339)).
		TimeMax(query.To.Format(time.RFC3339)).
		Q(query.Text).
		SingleEvents(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, toModel(item))
	}
	return events, nil
}

// CreateEvent inserts a new event and returns its ID.
func (c *Calendar) CreateEvent(ctx context.Context, event model.CalendarEvent) (string, error) {
	created, err := c.service.Events.Insert(c.calendarID, &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339), TimeZone: event.TimeZone},
		End:         &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339), TimeZone: event.TimeZone},
		ColorId:     event.ColorID,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}
	return created.Id, nil
}

// PatchDescription replaces the description of eventID, leaving other fields untouched.
func (c *Calendar) PatchDescription(ctx context.Context, eventID, description string) error {
	_, err := c.service.Events.Patch(c.calendarID, eventID, &calendar.Event{
		Description: description,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("patch event %s: %w", eventID, err)
	}
	return nil
}

func toModel(item *calendar.Event) model.CalendarEvent {
	event := model.CalendarEvent{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		ColorID:     item.ColorId,
	}
	if item.Start != nil {
		event.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
		event.TimeZone = item.Start.TimeZone
	}
	if item.End != nil {
		event.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
	}
	return event
}
