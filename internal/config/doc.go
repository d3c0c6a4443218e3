// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the shellpkg CLI.
//
// Configuration is assembled from multiple sources; for each field the first
// source with a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (SHELLPKG_ prefix)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetStructuredConfig]; [StructuredConfig.Packaging]
// converts the result into the packaging client's configuration.
package config
