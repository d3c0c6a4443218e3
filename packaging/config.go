// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packaging

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds each request when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config describes the server and the credentials used to log in.
type Config struct {
	// Host is the server name or IP address, without a scheme.
	Host string
	// Port is the API port, 9000 on a default installation.
	Port int

	Username string
	Password string
	// Domain is the reserved domain to log into, usually "Global".
	Domain string

	// Timeout bounds every request. Zero means DefaultTimeout.
	Timeout time.Duration
}

func (cfg Config) validate() error {
	host := strings.TrimSpace(cfg.Host)
	switch {
	case host == "":
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	case strings.Contains(host, "://"):
		return fmt.Errorf("%w: host %q must not include a scheme", ErrInvalidConfig, host)
	case cfg.Port < 1 || cfg.Port > 65535:
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, cfg.Port)
	case cfg.Username == "":
		return fmt.Errorf("%w: username is required", ErrInvalidConfig)
	case cfg.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidConfig)
	case strings.TrimSpace(cfg.Domain) == "":
		return fmt.Errorf("%w: domain is required", ErrInvalidConfig)
	case cfg.Timeout < 0:
		return fmt.Errorf("%w: negative timeout", ErrInvalidConfig)
	}
	return nil
}

// baseURL returns http://host:port; the /API prefix is part of each path.
func (cfg Config) baseURL() string {
	return "http://" + net.JoinHostPort(strings.TrimSpace(cfg.Host), strconv.Itoa(cfg.Port))
}

func (cfg Config) timeout() time.Duration {
	if cfg.Timeout == 0 {
		return DefaultTimeout
	}
	return cfg.Timeout
}
