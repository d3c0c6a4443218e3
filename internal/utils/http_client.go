// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient for talking to the packaging API.
//
// The client never retries: every call performs exactly one round trip and
// failures are reported to the caller. A non-positive timeout leaves resty's
// default (no timeout) in place.
//
//	client := utils.NewHTTPClient("http://cloudshell:9000", 30*time.Second)
//	resp, err := client.R().Get("/API/Standards")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
