// Package client is an HTTP client for the roster API. It implements the
// panel's Backend.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "opportunity-team/internal/errors"
	"opportunity-team/internal/models"
	"opportunity-team/internal/panel"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id of a request.
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout bounds every call when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds the client settings.
type Config struct {
	BaseURL string // e.g. http://localhost:8080/api/v1
	Token   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Client calls the roster API.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

var _ panel.Backend = (*Client)(nil)

// envelope mirrors the API response format.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type itemsOf[T any] struct {
	Items []T `json:"items"`
}

// New creates a Client.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		h.SetAuthToken(cfg.Token)
	}
	h.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})

	return &Client{http: h, logger: logger}
}

// FetchTeamMembers returns the roster of an opportunity.
func (c *Client) FetchTeamMembers(ctx context.Context, opportunityID string) ([]models.TeamMemberRecord, error) {
	var out envelope[itemsOf[models.TeamMemberRecord]]
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("opportunityId", opportunityID).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/opportunities/{opportunityId}/team-members")
	if err := c.check("fetch team members", resp, err); err != nil {
		return nil, err
	}
	return nonNil(out.Data.Items), nil
}

// FetchRoles returns the team role catalog.
func (c *Client) FetchRoles(ctx context.Context) ([]models.Role, error) {
	var out envelope[itemsOf[models.Role]]
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/team-roles")
	if err := c.check("fetch team roles", resp, err); err != nil {
		return nil, err
	}
	return nonNil(out.Data.Items), nil
}

// SearchUsers returns active users matching term.
func (c *Client) SearchUsers(ctx context.Context, term string) ([]models.UserCandidate, error) {
	var out envelope[itemsOf[models.UserCandidate]]
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", term).
		SetResult(&out).
		SetError(&errorBody{}).
		Get("/users/search")
	if err := c.check("search users", resp, err); err != nil {
		return nil, err
	}
	return nonNil(out.Data.Items), nil
}

// AddTeamMember adds a user to an opportunity team.
func (c *Client) AddTeamMember(ctx context.Context, req panel.AddRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("opportunityId", req.OpportunityID).
		SetBody(models.AddTeamMemberRequest{
			UserID:      req.UserID,
			TeamRole:    req.TeamRole,
			AccessLevel: req.AccessLevel,
		}).
		SetError(&errorBody{}).
		Post("/opportunities/{opportunityId}/team-members")
	return c.check("add team member", resp, err)
}

// RemoveTeamMember removes a member from an opportunity team.
func (c *Client) RemoveTeamMember(ctx context.Context, opportunityID, memberID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"opportunityId": opportunityID,
			"memberId":      memberID,
		}).
		SetError(&errorBody{}).
		Delete("/opportunities/{opportunityId}/team-members/{memberId}")
	return c.check("remove team member", resp, err)
}

// check turns a transport failure or an error status into an error.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("roster api call failed", slog.String("op", op), slog.Any("err", err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsError() {
		return nil
	}

	remote := &apperrors.RemoteError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		remote.Code = body.Code
		remote.Message = body.Error
	}

	c.logger.Warn("roster api returned error",
		slog.String("op", op),
		slog.Int("status", remote.StatusCode),
		slog.String("code", remote.Code),
		slog.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
	)
	return remote
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
