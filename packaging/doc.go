// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package packaging is a client for the shell packaging REST API of a
// CloudShell-style automation server.
//
// A [Client] is obtained from [New], which logs in once and caches the
// returned token. Every later call sends that token as
// "Authorization: Basic <token>" and performs exactly one HTTP round trip;
// nothing is retried.
//
//	c, err := packaging.New(ctx, packaging.Config{
//		Host:     "cloudshell",
//		Port:     9000,
//		Username: "admin",
//		Password: "admin",
//		Domain:   "Global",
//	})
//	if err != nil {
//		return err
//	}
//	err = c.UpdateShell(ctx, "dist/NutShell.zip", "")
//
// Failures are reported with the sentinel errors declared in errors.go and
// can be matched with [errors.Is]. HTTP status codes are translated per
// endpoint, see errors_mapper.go.
package packaging
