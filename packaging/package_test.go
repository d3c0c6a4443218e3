// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shell-packager/internal/packagingtest"
	"github.com/MKhiriev/go-shell-packager/models"
)

func TestImportPackage_Success(t *testing.T) {
	c, srv, fs := newTestClient(t)
	writeArchive(t, fs, "exports/Lab.zip", "PACKAGE")

	err := c.ImportPackage(context.Background(), "exports/Lab.zip")

	require.NoError(t, err)
	req, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/API/Package/ImportPackage", req.Path)
	assert.Equal(t, "Basic TOKEN", req.Authorization)
	assert.Equal(t, "file", req.FileField)
	assert.Equal(t, "Lab.zip", req.FileName)
	assert.Equal(t, []byte("PACKAGE"), req.FileContent)
}

func TestImportPackage_Failure(t *testing.T) {
	c, srv, fs := newTestClient(t)
	writeArchive(t, fs, "Lab.zip", "PACKAGE")
	srv.Respond(http.MethodPost, "/API/Package/ImportPackage", http.StatusNotFound, "")

	err := c.ImportPackage(context.Background(), "Lab.zip")

	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestImportPackage_MissingArchive(t *testing.T) {
	c, srv, _ := newTestClient(t)
	before := len(srv.Requests())

	err := c.ImportPackage(context.Background(), "Lab.zip")

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, srv.Requests(), before)
}

func TestExportPackage_Success(t *testing.T) {
	c, srv, _ := newTestClient(t)
	topologies := []string{"Lab A", "Lab B"}

	archive, err := c.ExportPackage(context.Background(), topologies)

	require.NoError(t, err)
	assert.Equal(t, packagingtest.ExportedArchive(topologies), archive)

	req, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/API/Package/ExportPackage", req.Path)
	assert.Equal(t, "Basic TOKEN", req.Authorization)

	var body models.ExportRequest
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, topologies, body.TopologyNames)
	assert.JSONEq(t, `{"TopologyNames":["Lab A","Lab B"]}`, string(req.Body))
}

func TestExportPackage_Failure(t *testing.T) {
	c, srv, _ := newTestClient(t)
	srv.Respond(http.MethodPost, "/API/Package/ExportPackage", http.StatusInternalServerError, "export failed")

	archive, err := c.ExportPackage(context.Background(), []string{"Lab"})

	assert.Nil(t, archive)
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "export failed")
}

func TestExportPackage_NoTopologies(t *testing.T) {
	c, _, _ := newTestClient(t)

	_, err := c.ExportPackage(context.Background(), nil)

	assert.ErrorIs(t, err, ErrInvalidArgument)
}
