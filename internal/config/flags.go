// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a command's flag set. Read them with
// [Flags.Config] after the flag set has been parsed.
type Flags struct {
	cfg     StructuredConfig
	address NetAddress
}

// RegisterFlags binds the configuration flags to fs.
//
// Flags:
//
//	-a/--address     server address in format host:port
//	--host           server host
//	--port           server port
//	--username       login user
//	--password       login password
//	--domain         reserved domain name
//	--timeout        request timeout (e.g. "30s")
//	-c/--config      JSON config file path
//	--log-level      log level (debug, info, warn, error)
//	--log-format     log format (console, json)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "Server address host:port")
	fs.StringVar(&f.cfg.Server.Host, "host", "", "Server host")
	fs.IntVar(&f.cfg.Server.Port, "port", 0, "Server port (default 9000)")
	fs.StringVar(&f.cfg.Auth.Username, "username", "", "Login user name")
	fs.StringVar(&f.cfg.Auth.Password, "password", "", "Login password (prompted for when omitted)")
	fs.StringVar(&f.cfg.Auth.Domain, "domain", "", "Reserved domain name (default Global)")
	fs.DurationVar(&f.cfg.Server.RequestTimeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVarP(&f.cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.cfg.Log.Level, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.cfg.Log.Format, "log-format", "", "Log format: console, json")

	return f
}

// Config returns the flag values as a [StructuredConfig]. Explicit --host and
// --port take precedence over the parts of --address.
func (f *Flags) Config() *StructuredConfig {
	cfg := f.cfg
	if cfg.Server.Host == "" {
		cfg.Server.Host = f.address.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = f.address.Port
	}
	return &cfg
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// Hostnames and IP addresses (IPv6 in brackets) are accepted; the port must
// be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}
	if host == "" {
		return errors.New("host must not be empty")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
