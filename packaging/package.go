// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-shell-packager/models"
)

const (
	importPackagePath = "/API/Package/ImportPackage"
	exportPackagePath = "/API/Package/ExportPackage"
)

// ImportPackage implements [PackagingClient]. It uploads the package archive
// at path to POST /API/Package/ImportPackage. Non-2xx is [ErrRequestFailed].
func (c *Client) ImportPackage(ctx context.Context, path string) error {
	req, err := c.uploadRequest(ctx, models.ShellPackage{Path: path})
	if err != nil {
		return err
	}

	resp, err := req.Post(importPackagePath)
	if err != nil {
		return fmt.Errorf("%w: import package request: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp, defaultMapping)
}

// ExportPackage implements [PackagingClient]. It POSTs
// {"TopologyNames": [...]} to /API/Package/ExportPackage and returns the
// response body, a zip archive.
func (c *Client) ExportPackage(ctx context.Context, topologies []string) ([]byte, error) {
	if len(topologies) == 0 {
		return nil, fmt.Errorf("%w: no topologies to export", ErrInvalidArgument)
	}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ExportRequest{TopologyNames: topologies}).
		Post(exportPackagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: export package request: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp, defaultMapping); err != nil {
		return nil, err
	}

	return bytes.Clone(resp.Body()), nil
}
