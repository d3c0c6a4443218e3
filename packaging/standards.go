// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-shell-packager/models"
)

const standardsPath = "/API/Standards"

// GetInstalledStandards implements [PackagingClient]. It GETs /API/Standards
// and decodes the JSON list. An empty body yields an empty, non-nil slice.
// Servers without the endpoint answer 404 or 405, which is reported as
// [ErrFeatureUnavailable].
func (c *Client) GetInstalledStandards(ctx context.Context) ([]models.Standard, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Accept", "application/json").
		Get(standardsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: get installed standards request: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, standardsMapping); err != nil {
		return nil, err
	}

	standards := make([]models.Standard, 0)
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return standards, nil
	}

	if err = json.Unmarshal(body, &standards); err != nil {
		return nil, fmt.Errorf("%w: decode installed standards: %w", ErrRequestFailed, err)
	}
	if standards == nil {
		standards = make([]models.Standard, 0)
	}

	return standards, nil
}
