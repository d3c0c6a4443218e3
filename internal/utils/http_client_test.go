// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:9000", time.Second)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Configuration(t *testing.T) {
	client := NewHTTPClient("http://localhost:9000", 5*time.Second)

	assert.Equal(t, "http://localhost:9000", client.BaseURL)
	assert.Equal(t, 0, client.RetryCount)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_ZeroTimeoutKeepsDefault(t *testing.T) {
	client := NewHTTPClient("http://localhost:9000", 0)

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a:1", 0)
	client2 := NewHTTPClient("http://b:2", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}
