// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// auth0DomainSuffix is appended to the tenant prefix to form the tenant host.
const auth0DomainSuffix = ".auth0.com"

// Environment is the deployment-specific configuration read by the
// applications at startup.
//
// The value is immutable: all fields are unexported and exposed through
// read-only accessors, and the only way to obtain a non-zero Environment is
// [NewEnvironment], which validates every field. Environment is safe to copy
// and to read from multiple goroutines.
type Environment struct {
	production   bool
	apiServerURL string
	auth0        Auth0
}

// Auth0 holds the identifiers the external identity provider integration
// needs to initiate a login flow and to verify issued access tokens.
type Auth0 struct {
	url         string
	audience    string
	clientID    string
	callbackURL string
}

// Field is a single named value of an [Environment], used for ordered
// display.
type Field struct {
	Key   string
	Value string
}

// NewAuth0 constructs an [Auth0] record. Values are trimmed but not
// validated; validation happens in [NewEnvironment].
func NewAuth0(tenantURL, audience, clientID, callbackURL string) Auth0 {
	return Auth0{
		url:         strings.TrimSpace(tenantURL),
		audience:    strings.TrimSpace(audience),
		clientID:    strings.TrimSpace(clientID),
		callbackURL: strings.TrimSpace(callbackURL),
	}
}

// NewEnvironment validates the given values and returns an immutable
// [Environment].
//
// Returned errors wrap [ErrInvalidEnvironment] together with the specific
// cause ([ErrEmptyField], [ErrMalformedURL], [ErrInvalidAuth0Domain] or
// [ErrInsecureProductionURL]).
func NewEnvironment(production bool, apiServerURL string, auth0 Auth0) (Environment, error) {
	env := Environment{
		production:   production,
		apiServerURL: strings.TrimSpace(apiServerURL),
		auth0:        auth0,
	}

	if err := env.validate(); err != nil {
		return Environment{}, fmt.Errorf("%w: %w", ErrInvalidEnvironment, err)
	}

	return env, nil
}

// Production reports whether the configuration targets a production
// deployment.
func (e Environment) Production() bool {
	return e.production
}

// APIServerURL returns the base address of the backend API.
func (e Environment) APIServerURL() string {
	return e.apiServerURL
}

// Auth0 returns the identity-provider record.
func (e Environment) Auth0() Auth0 {
	return e.auth0
}

// ListenAddress returns the host:port pair of [Environment.APIServerURL].
// When the URL carries no explicit port, the scheme default is used.
func (e Environment) ListenAddress() string {
	u, err := url.Parse(e.apiServerURL)
	if err != nil {
		return ""
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}

	return net.JoinHostPort(u.Hostname(), port)
}

// Fields returns the six configuration values in a stable order, keyed by
// their external names.
func (e Environment) Fields() []Field {
	return []Field{
		{Key: "production", Value: fmt.Sprintf("%t", e.production)},
		{Key: "apiServerUrl", Value: e.apiServerURL},
		{Key: "auth0.url", Value: e.auth0.url},
		{Key: "auth0.audience", Value: e.auth0.audience},
		{Key: "auth0.clientId", Value: e.auth0.clientID},
		{Key: "auth0.callbackURL", Value: e.auth0.callbackURL},
	}
}

type environmentJSON struct {
	Production   bool      `json:"production"`
	APIServerURL string    `json:"apiServerUrl"`
	Auth0        auth0JSON `json:"auth0"`
}

type auth0JSON struct {
	URL         string `json:"url"`
	Audience    string `json:"audience"`
	ClientID    string `json:"clientId"`
	CallbackURL string `json:"callbackURL"`
}

// MarshalJSON encodes the environment in its external shape:
//
//	{"production":false,"apiServerUrl":"...","auth0":{"url":"...","audience":"...","clientId":"...","callbackURL":"..."}}
func (e Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(environmentJSON{
		Production:   e.production,
		APIServerURL: e.apiServerURL,
		Auth0: auth0JSON{
			URL:         e.auth0.url,
			Audience:    e.auth0.audience,
			ClientID:    e.auth0.clientID,
			CallbackURL: e.auth0.callbackURL,
		},
	})
}

// URL returns the tenant domain prefix (e.g. "dev-t-4sg5-6.eu").
func (a Auth0) URL() string {
	return a.url
}

// Audience returns the API audience identifier.
func (a Auth0) Audience() string {
	return a.audience
}

// ClientID returns the registered client identifier.
func (a Auth0) ClientID() string {
	return a.clientID
}

// CallbackURL returns the redirect target used after authentication.
func (a Auth0) CallbackURL() string {
	return a.callbackURL
}

// Domain returns the full tenant host, e.g. "dev-t-4sg5-6.eu.auth0.com".
// A url that already ends with the tenant suffix is returned unchanged.
func (a Auth0) Domain() string {
	if strings.HasSuffix(a.url, auth0DomainSuffix) {
		return a.url
	}
	return a.url + auth0DomainSuffix
}

// Issuer returns the expected "iss" claim of tokens issued by the tenant.
func (a Auth0) Issuer() string {
	return "https://" + a.Domain() + "/"
}

// KeySetURL returns the address of the tenant's JSON Web Key Set.
func (a Auth0) KeySetURL() string {
	return a.Issuer() + ".well-known/jwks.json"
}

// LoginURL returns the authorize link a front end opens to start the login
// flow. callbackPath is appended to [Auth0.CallbackURL] to form the
// redirect_uri.
func (a Auth0) LoginURL(callbackPath string) string {
	query := url.Values{}
	query.Set("audience", a.audience)
	query.Set("response_type", "token")
	query.Set("client_id", a.clientID)
	query.Set("redirect_uri", a.callbackURL+callbackPath)

	return "https://" + a.Domain() + "/authorize?" + query.Encode()
}
