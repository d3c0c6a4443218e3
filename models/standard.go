// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Standard is an installed standard as reported by the server. The record is
// opaque; only JSON decoding is performed.
type Standard map[string]any

// Name returns the StandardName field, or "" if absent.
func (s Standard) Name() string {
	name, _ := s["StandardName"].(string)
	return name
}

// Versions returns the Versions field as strings, skipping non-string
// entries.
func (s Standard) Versions() []string {
	raw, ok := s["Versions"].([]any)
	if !ok {
		return nil
	}

	versions := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			versions = append(versions, str)
		}
	}
	return versions
}
