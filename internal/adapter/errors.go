package adapter

import "errors"

// Transport errors, one per HTTP status class the identity provider is
// known to return.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrInvalidKeySetURL is returned by [NewHTTPKeySetAdapter] for an
	// address that is not an absolute http(s) URL.
	ErrInvalidKeySetURL = errors.New("invalid key set url")
	// ErrRequestingKeySet wraps network-level failures.
	ErrRequestingKeySet = errors.New("error requesting key set")
	// ErrDecodingKeySet is returned when the response body is not a JSON
	// Web Key Set.
	ErrDecodingKeySet = errors.New("error decoding key set")
	// ErrEmptyKeySet is returned when the set holds no usable RSA signing key.
	ErrEmptyKeySet = errors.New("key set contains no usable signing keys")
	// ErrInvalidKey is returned for a key whose modulus or exponent cannot
	// be decoded.
	ErrInvalidKey = errors.New("invalid rsa public key")
)
