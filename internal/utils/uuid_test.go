// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestID_IsVersion7(t *testing.T) {
	id, err := uuid.Parse(NewRequestID())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewRequestID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRequestID(), NewRequestID())
}
