// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-shell-packager/internal/logger"
	"github.com/MKhiriev/go-shell-packager/internal/utils"
	"github.com/MKhiriev/go-shell-packager/models"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"

	loginPath = "/API/Auth/Login"
)

// Client is an authenticated session with the packaging API. It holds the
// token obtained by New and is safe to reuse for any number of calls from a
// single goroutine.
type Client struct {
	client *utils.HTTPClient
	fs     afero.Fs
	logger *logger.Logger

	newRequestID func() string

	token string
}

// New validates cfg, logs in and returns a ready Client.
//
// Login is a single PUT /API/Auth/Login round trip carrying the credentials
// as a form (application/x-www-form-urlencoded). The response body is the token, optionally JSON-quoted. Returns
// [ErrInvalidConfig] (wrapped) before any request is made if cfg is
// incomplete, and [ErrAuthenticationFailed] (wrapped) if the server rejects
// the login, cannot be reached, or returns an empty token. No Client is
// returned on error.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		client:       utils.NewHTTPClient(cfg.baseURL(), cfg.timeout()),
		fs:           o.fs,
		logger:       o.logger,
		newRequestID: o.newRequestID,
	}
	c.client.
		SetLogger(logger.NewRestyLogger(c.logger.Logger)).
		OnAfterResponse(c.logResponse).
		OnError(c.logError)

	token, err := c.login(ctx, models.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
		Domain:   cfg.Domain,
	})
	if err != nil {
		return nil, err
	}
	c.token = token

	return c, nil
}

// WithRequestID returns a copy of ctx whose calls carry id as X-Request-ID
// instead of a generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return utils.WithRequestID(ctx, id)
}

// Token returns the token obtained at login.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := c.request(ctx).
		SetFormData(creds.FormData()).
		Put(loginPath)
	if err != nil {
		return "", fmt.Errorf("%w: login request: %w", ErrAuthenticationFailed, err)
	}

	code := resp.StatusCode()
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		body := strings.TrimSpace(resp.String())
		if body == "" {
			body = http.StatusText(code)
		}
		return "", fmt.Errorf("%w: http %d: %s", ErrAuthenticationFailed, code, body)
	}

	token := parseToken(resp.String())
	if token == "" {
		return "", fmt.Errorf("%w: empty token in login response", ErrAuthenticationFailed)
	}

	c.logger.Debug().Str("domain", creds.Domain).Str("user", creds.Username).Msg("logged in")
	return token, nil
}

// parseToken strips whitespace and JSON string quotes around the login
// response body.
func parseToken(body string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(body), `"`))
}

// request returns a request bound to ctx and tagged with a request ID.
func (c *Client) request(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.newRequestID()
	}

	return c.client.R().
		SetContext(ctx).
		SetHeader(headerRequestID, requestID)
}

// authedRequest is request with the session's Authorization header.
func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	return c.request(ctx).SetHeader(headerAuthorization, "Basic "+c.token)
}

func (c *Client) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug().
		Str("request_id", resp.Request.Header.Get(headerRequestID)).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("packaging api response")
	return nil
}

func (c *Client) logError(req *resty.Request, err error) {
	c.logger.Debug().
		Err(err).
		Str("request_id", req.Header.Get(headerRequestID)).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("packaging api request failed")
}
