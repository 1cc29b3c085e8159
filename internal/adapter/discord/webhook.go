package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

const (
	colorSuccess = 0xF6BF26 // matches the yellow calendar color
	colorFailure = 0xD50000
)

// Webhook posts run summaries to a Discord channel.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
	now        func() time.Time
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Send posts the notification as a single embed.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) error {
	if w.webhookURL == "" {
		return fmt.Errorf("webhook URL is empty")
	}

	color := colorSuccess
	if notification.Failed {
		color = colorFailure
	}

	payload := map[string]any{
		"embeds": []map[string]any{
			{
				"title":       truncate(notification.Title, 256),
				"description": truncate(notification.Description, 4096),
				"fields":      convertFields(notification.Fields),
				"timestamp":   w.now().UTC().Format(time.RFC3339),
				"color":       color,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	if w.logger != nil {
		w.logger.Info(ctx, "✅ run summary sent to discord")
	}
	return nil
}

// Discord allows at most 25 fields per embed.
func convertFields(fields []model.NotificationField) []map[string]any {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) > 25 {
		fields = fields[:25]
	}

	result := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		value := field.Value
		if strings.TrimSpace(value) == "" {
			value = "-"
		}
		result = append(result, map[string]any{
			"name":   truncate(field.Name, 256),
			"value":  truncate(value, 1024),
			"inline": field.Inline,
		})
	}

	return result
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}
