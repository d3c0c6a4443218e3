// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shell-packager/packaging"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{Host: "cloudshell", Port: 9000, RequestTimeout: time.Second},
		Auth:   Auth{Username: "admin", Password: "admin", Domain: "Global"},
		Log:    Log{Level: "warn", Format: LogFormatConsole},
	}
}

func parsedFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("shellpkg", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return flags
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take precedence and
// later ones only fill gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.Auth.Domain = "Lab"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Auth: Auth{Domain: "Global"}, JSONFilePath: "x.json"},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "Lab", cfg.Auth.Domain)
	assert.Equal(t, "x.json", cfg.JSONFilePath)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// ── withFlags / withEnv / withDefaults ───────────────────────────────────────

func TestWithFlags_NilIsSkipped(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"SHELLPKG_SERVER_HOST": "env-host"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-host", b.configs[0].Server.Host)
	assert.NoError(t, b.err)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SHELLPKG_SERVER_PORT": "x"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, DefaultPort, b.configs[0].Server.Port)
	assert.Equal(t, DefaultDomain, b.configs[0].Auth.Domain)
	assert.Equal(t, DefaultRequestTimeout, b.configs[0].Server.RequestTimeout)
	assert.Empty(t, b.configs[0].Auth.Username)
	assert.Empty(t, b.configs[0].Auth.Password)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.Host = "json-host"
	payload.Auth.Username = "json-user"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-host", b.configs[1].Server.Host)
	assert.Equal(t, "json-user", b.configs[1].Auth.Username)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority path wins.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.Host = "first-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: path},
		&StructuredConfig{JSONFilePath: "/nonexistent/config.json"},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first-wins", b.configs[2].Server.Host)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.Host = "json-host"
	payload.Server.Port = 9100
	payload.Auth.Username = "json-user"
	payload.Auth.Password = "json-pass"
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"SHELLPKG_CONFIG":        path,
		"SHELLPKG_SERVER_HOST":   "env-host",
		"SHELLPKG_AUTH_USERNAME": "env-user",
	})
	flags := parsedFlags(t, "--username", "flag-user")

	cfg, err := GetStructuredConfig(flags)

	require.NoError(t, err)
	assert.Equal(t, "env-host", cfg.Server.Host)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "flag-user", cfg.Auth.Username)
	assert.Equal(t, "json-pass", cfg.Auth.Password)
	assert.Equal(t, DefaultDomain, cfg.Auth.Domain)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestGetStructuredConfig_MissingHost(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(parsedFlags(t, "--username", "admin"))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestGetStructuredConfig_MissingUsername(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(parsedFlags(t, "--host", "cloudshell"))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestGetStructuredConfig_PasswordOptional(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(parsedFlags(t, "--host", "cloudshell", "--username", "admin"))

	require.NoError(t, err)
	assert.ErrorIs(t, cfg.RequirePassword(), ErrMissingPassword)
}

// ── validation / mapping ─────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"port out of range", func(c *StructuredConfig) { c.Server.Port = 70000 }, ErrInvalidServerConfigs},
		{"negative timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, ErrInvalidServerConfigs},
		{"blank domain", func(c *StructuredConfig) { c.Auth.Domain = " " }, ErrInvalidAuthConfigs},
		{"unknown log format", func(c *StructuredConfig) { c.Log.Format = "xml" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_Packaging(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, packaging.Config{
		Host:     "cloudshell",
		Port:     9000,
		Username: "admin",
		Password: "admin",
		Domain:   "Global",
		Timeout:  time.Second,
	}, cfg.Packaging())
}
