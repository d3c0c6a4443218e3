// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete.
var (
	// ErrInvalidServerConfigs indicates a missing host or an out-of-range
	// port or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a missing username or domain.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidLogConfigs indicates an unknown log format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrMissingPassword is returned by [StructuredConfig.RequirePassword].
	ErrMissingPassword = errors.New("password is required")
)
