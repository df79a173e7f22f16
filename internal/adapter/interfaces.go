// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transport to the identity provider.
//
// The only abstraction is [KeySetProvider], which fetches the tenant's JSON
// Web Key Set so that access tokens can be verified locally. The package
// ships an HTTP implementation ([NewHTTPKeySetAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// transport (e.g. [ErrNotFound] for 404, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"
	"crypto/rsa"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// KeySet maps a key id ("kid" header of a token) to the RSA public key that
// verifies tokens signed with it.
type KeySet map[string]*rsa.PublicKey

// KeySetProvider fetches the signing keys published by the identity
// provider.
type KeySetProvider interface {
	// FetchKeySet downloads and decodes the current key set. Keys that are
	// not RSA signing keys are skipped; a set with no usable key is an
	// error ([ErrEmptyKeySet]).
	FetchKeySet(ctx context.Context) (KeySet, error)
}
