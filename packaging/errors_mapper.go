// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusMapping assigns an endpoint-specific sentinel to a status code.
// Codes absent from the mapping become ErrRequestFailed.
type statusMapping map[int]error

var (
	// defaultMapping: only the generic failure applies.
	defaultMapping = statusMapping{}

	updateShellMapping = statusMapping{
		http.StatusNotFound: ErrShellNotFound,
	}

	standardsMapping = statusMapping{
		http.StatusNotFound:         ErrFeatureUnavailable,
		http.StatusMethodNotAllowed: ErrFeatureUnavailable,
	}

	// The server answers 400 for an unknown shell on these endpoints; 404 and
	// 405 mean the endpoint itself does not exist.
	shellLookupMapping = statusMapping{
		http.StatusBadRequest:       ErrShellNotFound,
		http.StatusNotFound:         ErrFeatureUnavailable,
		http.StatusMethodNotAllowed: ErrFeatureUnavailable,
	}
)

func mapHTTPError(resp *resty.Response, mapping statusMapping) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if sentinel, ok := mapping[code]; ok {
		return fmt.Errorf("%w: http %d: %s", sentinel, code, body)
	}
	return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, code, body)
}
