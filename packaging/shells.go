// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-shell-packager/models"
)

const (
	shellsPath = "/API/Shells"
	shellPath  = "/API/Shells/{name}"

	// uploadField is the multipart form field holding the archive.
	uploadField = "file"
)

// AddShell implements [PackagingClient]. It reads the archive at path and
// POSTs it as a multipart upload to POST /API/Shells. Any 2xx (the server
// answers 201) is success; every other status is [ErrRequestFailed]. If the
// archive cannot be read no request is sent.
func (c *Client) AddShell(ctx context.Context, path string) error {
	req, err := c.uploadRequest(ctx, models.ShellPackage{Path: path})
	if err != nil {
		return err
	}

	resp, err := req.Post(shellsPath)
	if err != nil {
		return fmt.Errorf("%w: add shell request: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp, defaultMapping)
}

// UpdateShell implements [PackagingClient]. The archive at path is PUT to
// /API/Shells/{name}, where name is the explicit name or, when empty, the
// archive file name without its extension. A 404 means the shell is not
// installed and yields [ErrShellNotFound].
func (c *Client) UpdateShell(ctx context.Context, path, name string) error {
	pkg := models.ShellPackage{Path: path, Name: name}
	target := pkg.TargetName()
	if target == "" || target == "." {
		return fmt.Errorf("%w: cannot derive shell name from %q", ErrInvalidArgument, path)
	}

	req, err := c.uploadRequest(ctx, pkg)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("name", target).
		Put(shellPath)
	if err != nil {
		return fmt.Errorf("%w: update shell %q request: %w", ErrRequestFailed, target, err)
	}

	return mapHTTPError(resp, updateShellMapping)
}

// GetShell implements [PackagingClient]. It GETs /API/Shells/{name} and
// returns the JSON body; a body that is not valid JSON is [ErrRequestFailed].
// The server reports an unknown shell with 400
// ([ErrShellNotFound]); 404 and 405 mean the endpoint is missing
// ([ErrFeatureUnavailable]).
func (c *Client) GetShell(ctx context.Context, name string) (models.Shell, error) {
	if err := validateShellName(name); err != nil {
		return nil, err
	}

	resp, err := c.authedRequest(ctx).
		SetPathParam("name", name).
		Get(shellPath)
	if err != nil {
		return nil, fmt.Errorf("%w: get shell %q request: %w", ErrRequestFailed, name, err)
	}
	if err = mapHTTPError(resp, shellLookupMapping); err != nil {
		return nil, err
	}

	body := bytes.TrimSpace(resp.Body())
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: decode shell %q: invalid JSON body", ErrRequestFailed, name)
	}

	return models.Shell(bytes.Clone(body)), nil
}

// DeleteShell implements [PackagingClient]. It sends DELETE
// /API/Shells/{name}; statuses map as for GetShell.
func (c *Client) DeleteShell(ctx context.Context, name string) error {
	if err := validateShellName(name); err != nil {
		return err
	}

	resp, err := c.authedRequest(ctx).
		SetPathParam("name", name).
		Delete(shellPath)
	if err != nil {
		return fmt.Errorf("%w: delete shell %q request: %w", ErrRequestFailed, name, err)
	}

	return mapHTTPError(resp, shellLookupMapping)
}

// uploadRequest reads the archive and returns an authenticated request with
// the multipart file part attached.
func (c *Client) uploadRequest(ctx context.Context, pkg models.ShellPackage) (*resty.Request, error) {
	content, err := afero.ReadFile(c.fs, pkg.Path)
	if err != nil {
		return nil, fmt.Errorf("read archive %q: %w", pkg.Path, err)
	}

	return c.authedRequest(ctx).
		SetFileReader(uploadField, pkg.FileName(), bytes.NewReader(content)), nil
}

func validateShellName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty shell name", ErrInvalidArgument)
	}
	return nil
}
