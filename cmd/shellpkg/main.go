// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command shellpkg manages shells and packages on a CloudShell server
// through its packaging REST API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shell-packager/cmd/shellpkg/commands"
	"github.com/MKhiriev/go-shell-packager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := commands.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	stop()
	os.Exit(code)
}
