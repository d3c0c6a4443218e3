// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-shell-packager/internal/logger"
	"github.com/MKhiriev/go-shell-packager/internal/utils"
)

// Option customises a Client built by New.
type Option func(*options)

type options struct {
	fs           afero.Fs
	logger       *logger.Logger
	newRequestID func() string
}

func defaultOptions() options {
	return options{
		fs:           afero.NewOsFs(),
		logger:       logger.Nop(),
		newRequestID: utils.NewRequestID,
	}
}

// WithFs sets the filesystem archives are read from. Defaults to the OS
// filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithLogger sets the logger used for per-request debug lines. The client is
// silent by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l.With().Str("component", "packaging").Logger()}
	}
}

// WithRequestIDGenerator replaces the UUID v7 generator used for the
// X-Request-ID header. A request ID attached to the call's context with
// [WithRequestID] still takes precedence.
func WithRequestIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.newRequestID = gen
		}
	}
}
