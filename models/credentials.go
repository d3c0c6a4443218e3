// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the login payload sent to the authentication endpoint.
type Credentials struct {
	Username string
	Password string
	Domain   string
}

// FormData returns the credentials as login form fields.
func (c Credentials) FormData() map[string]string {
	return map[string]string{
		"username": c.Username,
		"password": c.Password,
		"domain":   c.Domain,
	}
}

// ExportRequest selects the topologies to pack into an exported package.
type ExportRequest struct {
	TopologyNames []string `json:"TopologyNames"`
}
