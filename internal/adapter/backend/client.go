// Package backend talks to a remote survey backend over its REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"levantamiento_service/internal/adapter/http/dto/request"
	"levantamiento_service/internal/adapter/http/dto/response"
	"levantamiento_service/internal/domain/auth"
	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/usecase/interfaces"
	"levantamiento_service/pkg"

	"github.com/rotisserie/eris"
)

// Option configures the backend client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithToken sends a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithPrincipal forwards the caller identity in X-User-ID / X-User-Role.
func WithPrincipal(p auth.Principal) Option {
	return func(c *Client) {
		c.principal = p
	}
}

// Client implements the survey repository against the remote backend. The backend
// keeps its own review trail, so Create on events is a no-op.
type Client struct {
	baseURL   string
	token     string
	principal auth.Principal
	http      *http.Client
}

var (
	_ interfaces.ISurveyRepository      = (*Client)(nil)
	_ interfaces.IReviewEventRepository = (*Client)(nil)
)

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) FetchSurvey(ctx context.Context, id string) (entities.Survey, error) {
	return c.survey(ctx, http.MethodGet, surveyPath(id), nil)
}

func (c *Client) ReviewBlock(ctx context.Context, id string, block entities.Block, decision entities.BlockStatus, comments *string) (entities.Survey, error) {
	switch decision {
	case entities.BlockStatusApproved:
		return c.survey(ctx, http.MethodPatch, surveyPath(id, "blocks", string(block), "approve"), nil)
	case entities.BlockStatusRejected:
		body := request.RejectBlockRequest{}
		if comments != nil {
			body.Comments = *comments
		}
		return c.survey(ctx, http.MethodPatch, surveyPath(id, "blocks", string(block), "reject"), body)
	default:
		return entities.Survey{}, interfaces.ErrInvalidTransition
	}
}

func (c *Client) ApproveAllBlocks(ctx context.Context, id string) (entities.Survey, error) {
	return c.survey(ctx, http.MethodPost, surveyPath(id, "approve-all"), nil)
}

func (c *Client) ReopenForEditing(ctx context.Context, id string, reason *string) (entities.Survey, error) {
	body := request.ReopenSurveyRequest{}
	if reason != nil {
		body.Reason = *reason
	}
	return c.survey(ctx, http.MethodPost, surveyPath(id, "reopen"), body)
}

func (c *Client) Create(_ context.Context, e entities.ReviewEvent) (entities.ReviewEvent, error) {
	return e, nil
}

func (c *Client) ListBySurveyID(ctx context.Context, surveyID string) ([]entities.ReviewEvent, error) {
	var res []response.ReviewEventResponse
	found, err := c.do(ctx, http.MethodGet, surveyPath(surveyID, "history"), nil, &res)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entities.ReviewEvent{}, nil
	}
	events := make([]entities.ReviewEvent, 0, len(res))
	for _, r := range res {
		events = append(events, r.ToReviewEvent())
	}
	return events, nil
}

func (c *Client) survey(ctx context.Context, method, path string, body any) (entities.Survey, error) {
	var res response.SurveyResponse
	found, err := c.do(ctx, method, path, body, &res)
	if err != nil || !found {
		return entities.Survey{}, err
	}
	return res.ToSurvey(), nil
}

// do sends one request and decodes a 2xx body into out. A 404 reports found=false.
// There are no retries: a failed command is surfaced to the caller as is.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return false, eris.Wrap(err, "backend: encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, eris.Wrap(err, "backend: create request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.principal.UserID != "" {
		req.Header.Set("X-User-ID", c.principal.UserID)
		req.Header.Set("X-User-Role", string(c.principal.Role))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", pkg.ErrService, eris.Wrapf(err, "backend: %s %s", method, path))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%w: backend: read response: %v", pkg.ErrService, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("%w: backend: decode response: %v", pkg.ErrService, err)
		}
		return true, nil
	default:
		return false, statusError(resp.StatusCode, raw)
	}
}

func statusError(status int, raw []byte) error {
	msg := http.StatusText(status)
	var body pkg.HTTPError
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		msg = body.Message
	}

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", pkg.ErrValidation, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", interfaces.ErrInvalidTransition, msg)
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", pkg.ErrForbidden, msg)
	default:
		return fmt.Errorf("%w: backend returned %d: %s", pkg.ErrService, status, msg)
	}
}

func surveyPath(id string, parts ...string) string {
	segs := append([]string{"surveys", url.PathEscape(id)}, parts...)
	return "/" + strings.Join(segs, "/")
}
