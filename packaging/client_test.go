// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shell-packager/internal/packagingtest"
)

func testConfig(srv *packagingtest.Server) Config {
	return Config{
		Host:     srv.Host(),
		Port:     srv.Port(),
		Username: packagingtest.Username,
		Password: packagingtest.Password,
		Domain:   packagingtest.Domain,
		Timeout:  5 * time.Second,
	}
}

// newTestClient starts a fake server and logs a client into it.
func newTestClient(t *testing.T, opts ...Option) (*Client, *packagingtest.Server, afero.Fs) {
	t.Helper()
	srv := packagingtest.NewServer(t)
	fs := afero.NewMemMapFs()

	c, err := New(context.Background(), testConfig(srv), append([]Option{WithFs(fs)}, opts...)...)
	require.NoError(t, err)
	return c, srv, fs
}

// ── New ──────────────────────────────────────────────────────────────────────

func TestNew_LogsInOnce(t *testing.T) {
	c, srv, _ := newTestClient(t)

	assert.Equal(t, packagingtest.Token, c.Token())
	assert.Equal(t, 1, srv.Logins())

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/API/Auth/Login", req.Path)
	assert.Empty(t, req.Authorization)

	assert.Equal(t, "application/x-www-form-urlencoded", req.ContentType)
	form, err := url.ParseQuery(string(req.Body))
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"username": {packagingtest.Username},
		"password": {packagingtest.Password},
		"domain":   {packagingtest.Domain},
	}, form)
}

func TestNew_TokenQuotingVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json quoted", `"TOKEN"`},
		{"bare", "TOKEN"},
		{"surrounding whitespace", "  \"TOKEN\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := packagingtest.NewServer(t)
			srv.LoginBody = tt.body

			c, err := New(context.Background(), testConfig(srv))

			require.NoError(t, err)
			assert.Equal(t, "TOKEN", c.Token())
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	srv := packagingtest.NewServer(t)

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"host with scheme", func(c *Config) { c.Host = "http://" + c.Host }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"missing username", func(c *Config) { c.Username = "" }},
		{"missing password", func(c *Config) { c.Password = "" }},
		{"missing domain", func(c *Config) { c.Domain = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(srv)
			tt.mutate(&cfg)

			c, err := New(context.Background(), cfg)

			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
	assert.Empty(t, srv.Requests())
}

func TestNew_WrongCredentials(t *testing.T) {
	srv := packagingtest.NewServer(t)
	cfg := testConfig(srv)
	cfg.Password = "WRONG"

	c, err := New(context.Background(), cfg)

	assert.Nil(t, c)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Contains(t, err.Error(), "http 401")
	assert.Equal(t, 1, srv.Logins())
}

func TestNew_EmptyToken(t *testing.T) {
	srv := packagingtest.NewServer(t)
	srv.LoginBody = `""`

	c, err := New(context.Background(), testConfig(srv))

	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNew_ServerError(t *testing.T) {
	srv := packagingtest.NewServer(t)
	srv.Respond(http.MethodPut, "/API/Auth/Login", http.StatusInternalServerError, "boom")

	c, err := New(context.Background(), testConfig(srv))

	assert.Nil(t, c)
	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Contains(t, err.Error(), "boom")
}

func TestNew_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())
	srv.Close()

	c, err := New(context.Background(), Config{
		Host:     u.Hostname(),
		Port:     port,
		Username: "u",
		Password: "p",
		Domain:   "Global",
		Timeout:  time.Second,
	})

	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestNew_WithLoggerEmitsDebugLines(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, _, _ = newTestClient(t, WithLogger(zl))

	assert.Contains(t, buf.String(), "packaging api response")
	assert.Contains(t, buf.String(), "/API/Auth/Login")
	assert.NotContains(t, buf.String(), packagingtest.Password)
}

// ── request headers ──────────────────────────────────────────────────────────

func TestAuthorizationHeaderIsBasicToken(t *testing.T) {
	c, srv, _ := newTestClient(t)

	_, err := c.GetInstalledStandards(context.Background())
	require.NoError(t, err)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "Basic TOKEN", req.Authorization)
	assert.Equal(t, 1, srv.Logins())
}

func TestRequestID(t *testing.T) {
	c, srv, _ := newTestClient(t, WithRequestIDGenerator(func() string { return "generated-id" }))

	_, err := c.GetInstalledStandards(context.Background())
	require.NoError(t, err)
	req, _ := srv.LastRequest()
	assert.Equal(t, "generated-id", req.RequestID)

	_, err = c.GetInstalledStandards(WithRequestID(context.Background(), "deploy-42"))
	require.NoError(t, err)
	req, _ = srv.LastRequest()
	assert.Equal(t, "deploy-42", req.RequestID)
}

func TestParseToken(t *testing.T) {
	assert.Equal(t, "abc", parseToken(`"abc"`))
	assert.Equal(t, "abc", parseToken(" abc \n"))
	assert.Empty(t, parseToken(`""`))
	assert.Empty(t, parseToken("   "))
}
