package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellPackage_TargetName(t *testing.T) {
	tests := []struct {
		name string
		pkg  ShellPackage
		want string
	}{
		{"derived from archive", ShellPackage{Path: "work//NutShell.zip"}, "NutShell"},
		{"explicit name wins", ShellPackage{Path: "work//NutShell.zip", Name: "my_amazing_shell"}, "my_amazing_shell"},
		{"blank name ignored", ShellPackage{Path: "/tmp/Router.zip", Name: "  "}, "Router"},
		{"no extension", ShellPackage{Path: "dist/Switch"}, "Switch"},
		{"only last extension stripped", ShellPackage{Path: "dist/Shell.v2.zip"}, "Shell.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pkg.TargetName())
		})
	}
}

func TestShellPackage_FileName(t *testing.T) {
	assert.Equal(t, "NutShell.zip", ShellPackage{Path: "work//NutShell.zip"}.FileName())
}

func TestShell_Decode(t *testing.T) {
	var v map[string]any
	require.NoError(t, Shell(`{"Name":"NutShell"}`).Decode(&v))
	assert.Equal(t, "NutShell", v["Name"])

	assert.Error(t, Shell(nil).Decode(&v))
}

func TestShell_MarshalJSON(t *testing.T) {
	b, err := Shell(`[]`).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = Shell(nil).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestStandard_Accessors(t *testing.T) {
	s := Standard{"StandardName": "cloudshell_networking_standard", "Versions": []any{"5.0.0", 3, "5.0.1"}}

	assert.Equal(t, "cloudshell_networking_standard", s.Name())
	assert.Equal(t, []string{"5.0.0", "5.0.1"}, s.Versions())

	empty := Standard{}
	assert.Empty(t, empty.Name())
	assert.Nil(t, empty.Versions())
}

func TestNewAppBuildInfo_DefaultsToNA(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "", "abc")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.2.3")
}

func TestCredentials_FormData(t *testing.T) {
	creds := Credentials{Username: "USER", Password: "PASS", Domain: "Global"}

	assert.Equal(t, map[string]string{
		"username": "USER",
		"password": "PASS",
		"domain":   "Global",
	}, creds.FormData())
}
