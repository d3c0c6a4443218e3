// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the packaging client, the
// CLI and the test server: request-ID context keys, the resty HTTP client
// wrapper, UUID generation and JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a caller-chosen request ID is stored.
// When present, the packaging client sends it as X-Request-ID instead of
// generating a fresh one.
//
//	ctx := utils.WithRequestID(ctx, "deploy-42")
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the request ID from the context.
//
// ok is false when the value is missing, empty, or not a string.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	if !ok || requestID == "" {
		return "", false
	}
	return requestID, true
}
