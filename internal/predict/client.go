// Package predict provides the HTTP client for the external prediction
// service that hosts the trained workforce models. The service is treated as
// an opaque collaborator: it accepts the normalized feature vector and
// returns probability/label pairs. Its availability is surfaced distinctly
// from scoring errors.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kirtan-Dandwani/Workforce--distribution--ai/internal/types"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single prediction call.
const DefaultTimeout = 10 * time.Second

// ErrUnavailable indicates the prediction service could not be reached or
// failed internally. Callers map this to a service-unavailable response.
var ErrUnavailable = errors.New("prediction service unavailable")

// RetentionPrediction is the retention classifier output.
type RetentionPrediction struct {
	WillLeave        bool    `json:"will_leave"`
	LeaveProbability float64 `json:"leave_probability"`
	StayProbability  float64 `json:"stay_probability"`
}

// RolePrediction is the role classifier output.
type RolePrediction struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// salaryPrediction is the regression model output envelope.
type salaryPrediction struct {
	PredictedSalary float64 `json:"predicted_salary"`
}

// skillRatingPrediction is the skill-rating model output envelope.
type skillRatingPrediction struct {
	SkillRating float64 `json:"skill_rating"`
}

// Client calls the prediction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a prediction client for the given base URL.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
	}
}

// PredictRetention returns the retention classification for a profile.
func (c *Client) PredictRetention(ctx context.Context, p types.NormalizedProfile) (*RetentionPrediction, error) {
	var out RetentionPrediction
	if err := c.post(ctx, "/predict/retention", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictSalary returns the regression model's next-year salary for a profile.
func (c *Client) PredictSalary(ctx context.Context, p types.NormalizedProfile) (float64, error) {
	var out salaryPrediction
	if err := c.post(ctx, "/predict/salary", p, &out); err != nil {
		return 0, err
	}
	return out.PredictedSalary, nil
}

// PredictRole returns the best-fit role classification for a profile.
func (c *Client) PredictRole(ctx context.Context, p types.NormalizedProfile) (*RolePrediction, error) {
	var out RolePrediction
	if err := c.post(ctx, "/predict/role", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictSkillRating returns the 1-10 overall skill rating for a profile.
func (c *Client) PredictSkillRating(ctx context.Context, p types.NormalizedProfile) (float64, error) {
	var out skillRatingPrediction
	if err := c.post(ctx, "/predict/skill-rating", p, &out); err != nil {
		return 0, err
	}
	return out.SkillRating, nil
}

// post sends the feature vector and decodes the model response. Transport
// failures and 5xx responses collapse into ErrUnavailable.
func (c *Client) post(ctx context.Context, path string, features types.NormalizedProfile, out any) error {
	body, err := json.Marshal(features)
	if err != nil {
		return fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("prediction service unreachable")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("prediction service error")
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("prediction request %s rejected: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode prediction response: %w", err)
	}
	return nil
}
