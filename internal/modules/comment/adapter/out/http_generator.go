package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wellness/internal/modules/comment/domain"
	commentout "wellness/internal/modules/comment/port/out"
	apperrors "wellness/internal/platform/errors"
)

const (
	sleepCommentPath    = "/generate_sleep_comment"
	exerciseCommentPath = "/generate_exercise_comment"
	maxResponseBytes    = 1 << 20
)

type sleepRequest struct {
	Date       string  `json:"date"`
	SleepHours float64 `json:"sleep_hours"`
}

type sleepResponse struct {
	SleepComment string `json:"sleep_comment"`
}

type exerciseRequest struct {
	Date            string `json:"date"`
	ActivityType    string `json:"activity_type"`
	DurationMinutes int    `json:"duration_minutes"`
	QuickNote       string `json:"quick_note"`
}

type exerciseResponse struct {
	ExerciseComment string `json:"exercise_comment"`
}

// HTTPGenerator calls the comment generation service with JSON over HTTP.
type HTTPGenerator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGenerator(baseURL string, timeout time.Duration) commentout.Generator {
	return &HTTPGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGenerator) SleepComment(ctx context.Context, req domain.SleepRequest) (string, error) {
	resp := sleepResponse{}
	// The comment service keys sleep by the UTC calendar date of the write.
	body := sleepRequest{Date: req.Date.UTC().Format("2006-01-02"), SleepHours: req.SleepHours}
	if err := g.post(ctx, sleepCommentPath, body, &resp); err != nil {
		return "", err
	}
	return nonEmpty(resp.SleepComment)
}

func (g *HTTPGenerator) ExerciseComment(ctx context.Context, req domain.ExerciseRequest) (string, error) {
	resp := exerciseResponse{}
	body := exerciseRequest{
		Date:            req.Timestamp.Format(time.RFC3339),
		ActivityType:    req.ActivityType,
		DurationMinutes: req.DurationMinutes,
		QuickNote:       req.Note,
	}
	if err := g.post(ctx, exerciseCommentPath, body, &resp); err != nil {
		return "", err
	}
	return nonEmpty(resp.ExerciseComment)
}

func (g *HTTPGenerator) post(ctx context.Context, path string, payload, out any) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal comment request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create comment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", apperrors.ErrServiceUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", apperrors.ErrServiceUnavailable, path, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", apperrors.ErrServiceUnavailable, err)
	}
	return nil
}

func nonEmpty(comment string) (string, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", fmt.Errorf("%w: empty comment", apperrors.ErrServiceUnavailable)
	}
	return comment, nil
}
