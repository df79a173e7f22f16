// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks the invariants of an [Environment]: every string field is
// non-empty, both URLs are absolute http(s) URLs with a host, the tenant
// domain is a host-name fragment, and production environments use https.
func (e Environment) validate() error {
	required := []Field{
		{Key: "apiServerUrl", Value: e.apiServerURL},
		{Key: "auth0.url", Value: e.auth0.url},
		{Key: "auth0.audience", Value: e.auth0.audience},
		{Key: "auth0.clientId", Value: e.auth0.clientID},
		{Key: "auth0.callbackURL", Value: e.auth0.callbackURL},
	}
	for _, f := range required {
		if f.Value == "" {
			return fmt.Errorf("%w: %s", ErrEmptyField, f.Key)
		}
	}

	for _, f := range []Field{
		{Key: "apiServerUrl", Value: e.apiServerURL},
		{Key: "auth0.callbackURL", Value: e.auth0.callbackURL},
	} {
		u, err := parseHTTPURL(f.Value)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrMalformedURL, f.Key, err)
		}
		if e.production && u.Scheme != "https" {
			return fmt.Errorf("%w: %s", ErrInsecureProductionURL, f.Key)
		}
	}

	if !isHostFragment(e.auth0.url) {
		return fmt.Errorf("%w: %q", ErrInvalidAuth0Domain, e.auth0.url)
	}

	return nil
}

func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host")
	}

	return u, nil
}

// isHostFragment reports whether s consists of dot-separated labels of
// letters, digits and hyphens.
func isHostFragment(s string) bool {
	if s == "" {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
	}

	return true
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.KeyRefreshInterval <= 0 || cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
