// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"context"

	"github.com/MKhiriev/go-shell-packager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/packaging_client_mock.go -package=mock

// PackagingClient is the set of operations offered by an authenticated
// [Client]. The CLI depends on this interface so tests can substitute a mock.
type PackagingClient interface {
	// Token returns the token obtained at login.
	Token() string

	// AddShell uploads a new shell archive read from path.
	AddShell(ctx context.Context, path string) error

	// UpdateShell replaces an installed shell with the archive at path. When
	// name is empty the shell name is derived from the archive file name.
	// Returns [ErrShellNotFound] (wrapped) if the server does not know the
	// shell.
	UpdateShell(ctx context.Context, path, name string) error

	// GetInstalledStandards lists the standards installed on the server.
	// Returns [ErrFeatureUnavailable] (wrapped) on servers that predate the
	// endpoint.
	GetInstalledStandards(ctx context.Context) ([]models.Standard, error)

	// GetShell returns the server's descriptor of the named shell.
	GetShell(ctx context.Context, name string) (models.Shell, error)

	// DeleteShell removes the named shell from the server.
	DeleteShell(ctx context.Context, name string) error

	// ImportPackage uploads a package archive (topologies and resources).
	ImportPackage(ctx context.Context, path string) error

	// ExportPackage packs the named topologies and returns the archive bytes.
	ExportPackage(ctx context.Context, topologies []string) ([]byte, error)
}

var _ PackagingClient = (*Client)(nil)
