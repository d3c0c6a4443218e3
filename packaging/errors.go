// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import "errors"

var (
	// ErrInvalidConfig is returned by New when a required Config field is
	// missing or malformed. No request is sent.
	ErrInvalidConfig = errors.New("invalid packaging client config")

	// ErrInvalidArgument is returned when an operation is called with an
	// empty shell name or no topologies. No request is sent.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthenticationFailed is returned by New when login does not yield
	// a token.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrShellNotFound means the named shell is not installed. UpdateShell
	// reports it for 404; GetShell and DeleteShell for 400.
	ErrShellNotFound = errors.New("shell not found")

	// ErrFeatureUnavailable means the server predates the endpoint: 404 or
	// 405 from GetInstalledStandards, GetShell or DeleteShell.
	ErrFeatureUnavailable = errors.New("feature unavailable on this server version")

	// ErrRequestFailed covers every other non-success status, transport
	// errors and undecodable responses.
	ErrRequestFailed = errors.New("request failed")
)
