// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-shell-packager/packaging"
)

// Defaults applied when no source sets a value.
const (
	DefaultPort           = 9000
	DefaultDomain         = "Global"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = LogFormatConsole
)

// Supported values of Log.Format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// envPrefix is prepended to every environment variable name.
const envPrefix = "SHELLPKG_"

// StructuredConfig is the top-level configuration of the shellpkg CLI. It is
// populated by merging command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server addresses the packaging API.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds the login credentials.
	Auth Auth `envPrefix:"AUTH_"`

	// Log controls CLI logging.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: SHELLPKG_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the network settings of the packaging API.
type Server struct {
	// Host is the server name or IP, without scheme.
	// Env: SHELLPKG_SERVER_HOST
	Host string `env:"HOST"`

	// Port is the API port (9000 on a default installation).
	// Env: SHELLPKG_SERVER_PORT
	Port int `env:"PORT"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: SHELLPKG_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds the credentials used by the login call.
type Auth struct {
	// Env: SHELLPKG_AUTH_USERNAME
	Username string `env:"USERNAME"`

	// Env: SHELLPKG_AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// Domain is the reserved domain the user logs into.
	// Env: SHELLPKG_AUTH_DOMAIN
	Domain string `env:"DOMAIN"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: SHELLPKG_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "console" or "json".
	// Env: SHELLPKG_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// Packaging maps the configuration onto [packaging.Config].
func (cfg *StructuredConfig) Packaging() packaging.Config {
	return packaging.Config{
		Host:     cfg.Server.Host,
		Port:     cfg.Server.Port,
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
		Domain:   cfg.Auth.Domain,
		Timeout:  cfg.Server.RequestTimeout,
	}
}

// GetStructuredConfig loads, merges, and validates the configuration. For
// every field the first source that sets a non-zero value wins:
//  1. Command-line flags (nil flags are skipped)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The password is not required here: the CLI may still prompt for it.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
