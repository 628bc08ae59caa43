// Package client talks to the remote planning service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tripweaver/internal/constants"
	"github.com/julianstephens/tripweaver/internal/logger"
	"github.com/julianstephens/tripweaver/internal/models"
)

var (
	// ErrTransport wraps network-level failures, including timeouts.
	ErrTransport = errors.New("planning service unreachable")
	// ErrMalformedResponse means a 2xx body did not decode into a valid plan.
	ErrMalformedResponse = errors.New("malformed planning service response")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("planning service returned %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("planning service returned %d %s: %s", e.Code, http.StatusText(e.Code), e.Body)
}

// IsPlanningFailure reports whether err came from talking to the service.
func IsPlanningFailure(err error) bool {
	var statusErr *StatusError
	return errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrMalformedResponse) ||
		errors.As(err, &statusErr)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: constants.DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Plan sends req to POST /plan and returns the decoded, validated plan.
func (c *Client) Plan(ctx context.Context, req models.TripRequest) (models.TripPlan, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.TripPlan{}, fmt.Errorf("failed to encode trip request: %w", err)
	}

	requestID := uuid.New().String()
	logger.Debug("Sending plan request", "request_id", requestID, "data_source", req.DataSource)

	httpReq, err := c.newRequest(ctx, http.MethodPost, constants.PlanPath, bytes.NewReader(body), requestID)
	if err != nil {
		return models.TripPlan{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	data, err := c.do(httpReq)
	if err != nil {
		logger.Warn("Plan request failed", "request_id", requestID, "error", err, "elapsed", time.Since(start))
		return models.TripPlan{}, err
	}

	plan, err := decodePlan(data)
	if err != nil {
		logger.Warn("Plan response rejected", "request_id", requestID, "error", err)
		return models.TripPlan{}, err
	}

	logger.Info("Plan received", "request_id", requestID, "city", plan.City, "days", len(plan.Days), "elapsed", time.Since(start))
	return plan, nil
}

// Health calls GET /health and returns nil when the service reports ok.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := c.newRequest(ctx, http.MethodGet, constants.HealthPath, nil, uuid.New().String())
	if err != nil {
		return err
	}

	data, err := c.do(httpReq)
	if err != nil {
		return err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &status); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if status.Status != constants.HealthStatusOK {
		return fmt.Errorf("planning service reported status %q", status.Status)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, requestID string) (*http.Request, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", constants.AppName+"/"+constants.Version)
	httpReq.Header.Set(constants.RequestIDHeader, requestID)
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	return httpReq, nil
}

// do executes the request and returns the body of a 2xx response.
func (c *Client) do(httpReq *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: snippet(data)}
	}
	if len(data) > constants.MaxResponseBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedResponse, constants.MaxResponseBytes)
	}
	return data, nil
}

// wirePlan distinguishes missing required keys from empty values.
type wirePlan struct {
	City        *string                 `json:"city"`
	Days        []models.DayPlan        `json:"days"`
	Explanation models.Optional[string] `json:"explanation"`
}

func decodePlan(data []byte) (models.TripPlan, error) {
	var wire wirePlan
	if err := json.Unmarshal(data, &wire); err != nil {
		return models.TripPlan{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if wire.City == nil || wire.Days == nil {
		return models.TripPlan{}, fmt.Errorf("%w: missing city or days", ErrMalformedResponse)
	}

	plan := models.TripPlan{
		City:        *wire.City,
		Days:        wire.Days,
		Explanation: wire.Explanation,
	}
	if err := plan.Validate(); err != nil {
		return models.TripPlan{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	plan.Normalize()
	return plan, nil
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
