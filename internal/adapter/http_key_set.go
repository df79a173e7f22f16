package adapter

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/utils"
	"github.com/sethvargo/go-retry"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultMaxRetries   = 2
	defaultRetryDelay   = 200 * time.Millisecond
)

type httpKeySetAdapter struct {
	client    *utils.HTTPClient
	keySetURL string

	maxRetries uint64
	retryDelay time.Duration

	logger *logger.Logger
}

// jsonWebKey is a single entry of a JSON Web Key Set (RFC 7517). Only the
// members needed to rebuild an RSA public key are decoded.
type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

// NewHTTPKeySetAdapter constructs an HTTP implementation of
// [KeySetProvider] that downloads the key set from keySetURL (normally
// config.Auth0.KeySetURL). A non-positive timeout falls back to 10s.
//
// Failed requests are repeated with exponential backoff when the failure
// is a network error, 429 or 5xx.
func NewHTTPKeySetAdapter(keySetURL string, timeout time.Duration, logger *logger.Logger) (KeySetProvider, error) {
	normalized, err := normalizeKeySetURL(keySetURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeySetURL, err)
	}

	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &httpKeySetAdapter{
		client:     utils.NewHTTPClient(timeout),
		keySetURL:  normalized,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		logger:     logger,
	}, nil
}

func normalizeKeySetURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include an http(s) scheme and a host")
	}

	return u.String(), nil
}

// FetchKeySet implements [KeySetProvider].
func (a *httpKeySetAdapter) FetchKeySet(ctx context.Context) (KeySet, error) {
	var body []byte

	backoff := retry.WithMaxRetries(a.maxRetries, retry.NewExponential(a.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := a.client.R().
			SetContext(ctx).
			Get(a.keySetURL)
		if err != nil {
			a.logger.Warn().Err(err).Str("url", a.keySetURL).Msg("key set request failed, retrying")
			return retry.RetryableError(fmt.Errorf("%w: %w", ErrRequestingKeySet, err))
		}

		if err := mapHTTPError(resp); err != nil {
			if isRetryableStatus(resp.StatusCode()) {
				a.logger.Warn().Int("status", resp.StatusCode()).Str("url", a.keySetURL).Msg("key set request failed, retrying")
				return retry.RetryableError(err)
			}
			return err
		}

		body = resp.Body()
		return nil
	})
	if err != nil {
		a.logger.Err(err).Str("func", "httpKeySetAdapter.FetchKeySet").Msg("failed to fetch key set")
		return nil, err
	}

	keySet, err := parseKeySet(body)
	if err != nil {
		a.logger.Err(err).Str("func", "httpKeySetAdapter.FetchKeySet").Msg("failed to parse key set")
		return nil, err
	}

	a.logger.Debug().Int("keys", len(keySet)).Msg("key set fetched")
	return keySet, nil
}

// parseKeySet decodes a JSON Web Key Set and keeps the RSA signing keys.
// Keys with an unusable modulus or exponent are skipped.
func parseKeySet(data []byte) (KeySet, error) {
	var set jsonWebKeySet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingKeySet, err)
	}

	keySet := make(KeySet, len(set.Keys))
	for _, key := range set.Keys {
		if key.Kty != "RSA" || key.Kid == "" {
			continue
		}
		if key.Use != "" && key.Use != "sig" {
			continue
		}

		publicKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		keySet[key.Kid] = publicKey
	}

	if len(keySet) == 0 {
		return nil, ErrEmptyKeySet
	}

	return keySet, nil
}

func parseRSAPublicKey(modulus, exponent string) (*rsa.PublicKey, error) {
	nBytes, err := decodeSegment(modulus)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus: %w", ErrInvalidKey, err)
	}
	eBytes, err := decodeSegment(exponent)
	if err != nil {
		return nil, fmt.Errorf("%w: exponent: %w", ErrInvalidKey, err)
	}

	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes)
	if n.Sign() == 0 || !e.IsInt64() || e.Int64() < 2 || e.Int64() > 1<<31-1 {
		return nil, ErrInvalidKey
	}

	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

// decodeSegment accepts unpadded base64url as required by RFC 7518 and
// tolerates trailing padding.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
