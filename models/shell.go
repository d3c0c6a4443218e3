// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
)

// ShellPackage references a shell archive on the local filesystem.
//
// Name optionally overrides the target shell name on the server. When it is
// empty the name is derived from the archive file name.
type ShellPackage struct {
	// Path is the location of the archive (usually a .zip).
	Path string

	// Name is the explicit target shell name. Optional.
	Name string
}

// TargetName returns the shell name the package is published under: Name if
// set, otherwise the base file name of Path with its extension stripped
// (e.g. "work//NutShell.zip" -> "NutShell").
func (p ShellPackage) TargetName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}

	base := filepath.Base(p.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileName returns the base file name used for the multipart upload.
func (p ShellPackage) FileName() string {
	return filepath.Base(p.Path)
}

// Shell is the raw descriptor returned by the server for a single shell.
// The structure is server-defined, so it is kept as undecoded JSON.
type Shell json.RawMessage

// Decode unmarshals the descriptor into v.
func (s Shell) Decode(v any) error {
	if len(s) == 0 {
		return errors.New("empty shell descriptor")
	}
	return json.Unmarshal(s, v)
}

// MarshalJSON returns s as-is so a Shell can be embedded in other documents.
func (s Shell) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return s, nil
}
