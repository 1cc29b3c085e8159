package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"leetcode-revision/internal/domain/model"
	"leetcode-revision/internal/domain/ports"
)

const (
	catalogQuery     = `query { allQuestions { titleSlug questionId difficulty } }`
	submissionsQuery = `query recentAcSubmissions($username: String!, $limit: Int!) { recentAcSubmissionList(username: $username, limit: $limit) { id title titleSlug timestamp } }`
)

// Credentials authenticate requests against the LeetCode GraphQL API.
type Credentials struct {
	SessionCookie string
	CSRFToken     string
}

// Client implements CatalogProvider and SubmissionProvider using the LeetCode GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	referer    string
	creds      Credentials
	logger     ports.Logger
}

var (
	_ ports.CatalogProvider    = (*Client)(nil)
	_ ports.SubmissionProvider = (*Client)(nil)
)

// New creates a new LeetCode client.
func New(endpoint, referer string, creds Credentials, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		referer:    referer,
		creds:      creds,
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// FetchCatalog retrieves every known problem keyed by slug.
func (c *Client) FetchCatalog(ctx context.Context) (model.Catalog, error) {
	var gqlResp struct {
		Data struct {
			AllQuestions []struct {
				TitleSlug  string `json:"titleSlug"`
				QuestionID string `json:"questionId"`
				Difficulty string `json:"difficulty"`
			} `json:"allQuestions"`
		} `json:"data"`
		Errors []graphQLError `json:"errors"`
	}

	if err := c.do(ctx, graphQLRequest{Query: catalogQuery}, &gqlResp); err != nil {
		return nil, err
	}
	if err := joinErrors(gqlResp.Errors); err != nil {
		return nil, err
	}

	catalog := make(model.Catalog, len(gqlResp.Data.AllQuestions))
	for _, q := range gqlResp.Data.AllQuestions {
		if q.TitleSlug == "" {
			continue
		}
		catalog[q.TitleSlug] = model.ProblemRecord{
			Slug:       q.TitleSlug,
			NumericID:  q.QuestionID,
			Difficulty: model.Difficulty(q.Difficulty),
		}
	}
	return catalog, nil
}

// RecentAcceptedSubmissions returns up to limit accepted submissions for username, newest first.
func (c *Client) RecentAcceptedSubmissions(ctx context.Context, username string, limit int) ([]model.Submission, error) {
	req := graphQLRequest{
		Query:         submissionsQuery,
		Variables:     map[string]any{"username": username, "limit": limit},
		OperationName: "recentAcSubmissions",
	}

	var gqlResp struct {
		Data struct {
			RecentAcSubmissionList []struct {
				Title     string      `json:"title"`
				TitleSlug string      `json:"titleSlug"`
				Timestamp json.Number `json:"timestamp"`
			} `json:"recentAcSubmissionList"`
		} `json:"data"`
		Errors []graphQLError `json:"errors"`
	}

	if err := c.do(ctx, req, &gqlResp); err != nil {
		return nil, err
	}
	if err := joinErrors(gqlResp.Errors); err != nil {
		return nil, err
	}

	subs := make([]model.Submission, 0, len(gqlResp.Data.RecentAcSubmissionList))
	for _, s := range gqlResp.Data.RecentAcSubmissionList {
		ts, err := s.Timestamp.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse timestamp %q for %s: %w", s.Timestamp, s.TitleSlug, err)
		}
		subs = append(subs, model.Submission{
			Title:     s.Title,
			Slug:      s.TitleSlug,
			Timestamp: ts,
		})
	}
	return subs, nil
}

func (c *Client) do(ctx context.Context, payload graphQLRequest, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.referer)
	req.Header.Set("x-csrftoken", c.creds.CSRFToken)
	req.Header.Set("Cookie", fmt.Sprintf("LEETCODE_SESSION=%s; csrftoken=%s", c.creds.SessionCookie, c.creds.CSRFToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return ports.ErrSessionExpired
	}
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, summarizeBody(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func joinErrors(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
}

// summarizeBody condenses an error response for logging. LeetCode answers
// most failures with an HTML page, so markup is reduced to its text.
func summarizeBody(data []byte) string {
	raw := strings.TrimSpace(string(data))
	if !strings.HasPrefix(raw, "<") {
		return truncate(raw, 200)
	}

	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return truncate(raw, 200)
	}

	var builder strings.Builder
	extractText(node, &builder)
	return truncate(strings.Join(strings.Fields(builder.String()), " "), 200)
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
		builder.WriteRune(' ')
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return strings.TrimSpace(value[:limit-3]) + "..."
}
