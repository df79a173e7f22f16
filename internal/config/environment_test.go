// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func developmentEnvironment(t *testing.T) Environment {
	t.Helper()
	env, err := NewEnvironment(
		false,
		"http://127.0.0.1:5000",
		NewAuth0("dev-t-4sg5-6.eu", "drink", "f4abwQOHufPxU63932dw2cns9AEc3n7p", "http://localhost:8100"),
	)
	require.NoError(t, err)
	return env
}

func TestNewEnvironment_ReadsLiteralValues(t *testing.T) {
	env := developmentEnvironment(t)

	for range 3 {
		assert.False(t, env.Production())
		assert.Equal(t, "http://127.0.0.1:5000", env.APIServerURL())
		assert.Equal(t, "dev-t-4sg5-6.eu", env.Auth0().URL())
		assert.Equal(t, "drink", env.Auth0().Audience())
		assert.Equal(t, "f4abwQOHufPxU63932dw2cns9AEc3n7p", env.Auth0().ClientID())
		assert.Equal(t, "http://localhost:8100", env.Auth0().CallbackURL())
	}
}

func TestNewEnvironment_TrimsValues(t *testing.T) {
	env, err := NewEnvironment(false, "  http://127.0.0.1:5000 ", NewAuth0(" tenant ", " aud ", " id ", " http://localhost:8100\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:5000", env.APIServerURL())
	assert.Equal(t, "tenant", env.Auth0().URL())
	assert.Equal(t, "aud", env.Auth0().Audience())
	assert.Equal(t, "id", env.Auth0().ClientID())
	assert.Equal(t, "http://localhost:8100", env.Auth0().CallbackURL())
}

func TestNewEnvironment_Invalid(t *testing.T) {
	validAuth0 := NewAuth0("tenant", "aud", "client", "http://localhost:8100")

	tests := []struct {
		name       string
		production bool
		apiURL     string
		auth0      Auth0
		wantErr    error
	}{
		{
			name:    "empty api url",
			apiURL:  "",
			auth0:   validAuth0,
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty tenant",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("", "aud", "client", "http://localhost:8100"),
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty audience",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("tenant", "", "client", "http://localhost:8100"),
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty client id",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("tenant", "aud", "  ", "http://localhost:8100"),
			wantErr: ErrEmptyField,
		},
		{
			name:    "empty callback",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("tenant", "aud", "client", ""),
			wantErr: ErrEmptyField,
		},
		{
			name:    "api url without scheme",
			apiURL:  "127.0.0.1:5000",
			auth0:   validAuth0,
			wantErr: ErrMalformedURL,
		},
		{
			name:    "api url with ftp scheme",
			apiURL:  "ftp://example.com",
			auth0:   validAuth0,
			wantErr: ErrMalformedURL,
		},
		{
			name:    "callback without host",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("tenant", "aud", "client", "http://"),
			wantErr: ErrMalformedURL,
		},
		{
			name:    "tenant with slash",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("https://tenant", "aud", "client", "http://localhost:8100"),
			wantErr: ErrInvalidAuth0Domain,
		},
		{
			name:    "tenant with empty label",
			apiURL:  "http://127.0.0.1:5000",
			auth0:   NewAuth0("tenant..eu", "aud", "client", "http://localhost:8100"),
			wantErr: ErrInvalidAuth0Domain,
		},
		{
			name:       "production with http api url",
			production: true,
			apiURL:     "http://api.example.com",
			auth0:      NewAuth0("tenant", "aud", "client", "https://app.example.com"),
			wantErr:    ErrInsecureProductionURL,
		},
		{
			name:       "production with http callback",
			production: true,
			apiURL:     "https://api.example.com",
			auth0:      NewAuth0("tenant", "aud", "client", "http://app.example.com"),
			wantErr:    ErrInsecureProductionURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := NewEnvironment(tt.production, tt.apiURL, tt.auth0)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEnvironment)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Environment{}, env)
		})
	}
}

func TestNewEnvironment_ProductionHTTPS(t *testing.T) {
	env, err := NewEnvironment(true, "https://api.example.com", NewAuth0("tenant.us", "aud", "client", "https://app.example.com"))
	require.NoError(t, err)
	assert.True(t, env.Production())
}

func TestEnvironment_MarshalJSON_ExactlySixFields(t *testing.T) {
	env := developmentEnvironment(t)

	data, err := json.Marshal(env)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))
	assert.Len(t, top, 3)
	assert.Contains(t, top, "production")
	assert.Contains(t, top, "apiServerUrl")
	assert.Contains(t, top, "auth0")

	var auth0 map[string]string
	require.NoError(t, json.Unmarshal(top["auth0"], &auth0))
	assert.Equal(t, map[string]string{
		"url":         "dev-t-4sg5-6.eu",
		"audience":    "drink",
		"clientId":    "f4abwQOHufPxU63932dw2cns9AEc3n7p",
		"callbackURL": "http://localhost:8100",
	}, auth0)

	assert.JSONEq(t, `false`, string(top["production"]))
	assert.JSONEq(t, `"http://127.0.0.1:5000"`, string(top["apiServerUrl"]))
}

func TestEnvironment_Fields(t *testing.T) {
	fields := developmentEnvironment(t).Fields()

	require.Len(t, fields, 6)
	assert.Equal(t, Field{Key: "production", Value: "false"}, fields[0])
	assert.Equal(t, Field{Key: "apiServerUrl", Value: "http://127.0.0.1:5000"}, fields[1])
	assert.Equal(t, Field{Key: "auth0.clientId", Value: "f4abwQOHufPxU63932dw2cns9AEc3n7p"}, fields[4])
}

func TestEnvironment_CopyIsIndependent(t *testing.T) {
	env := developmentEnvironment(t)
	copied := env

	fields := copied.Fields()
	fields[1].Value = "http://changed"

	assert.Equal(t, "http://127.0.0.1:5000", env.APIServerURL())
	assert.Equal(t, env, copied)
}

func TestEnvironment_ListenAddress(t *testing.T) {
	tests := []struct {
		apiURL string
		want   string
	}{
		{apiURL: "http://127.0.0.1:5000", want: "127.0.0.1:5000"},
		{apiURL: "http://localhost", want: "localhost:80"},
		{apiURL: "https://api.example.com/v1", want: "api.example.com:443"},
	}

	for _, tt := range tests {
		t.Run(tt.apiURL, func(t *testing.T) {
			env, err := NewEnvironment(false, tt.apiURL, NewAuth0("tenant", "aud", "client", "http://localhost:8100"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, env.ListenAddress())
		})
	}
}

func TestAuth0_DerivedValues(t *testing.T) {
	a := developmentEnvironment(t).Auth0()

	assert.Equal(t, "dev-t-4sg5-6.eu.auth0.com", a.Domain())
	assert.Equal(t, "https://dev-t-4sg5-6.eu.auth0.com/", a.Issuer())
	assert.Equal(t, "https://dev-t-4sg5-6.eu.auth0.com/.well-known/jwks.json", a.KeySetURL())
}

func TestAuth0_DomainWithSuffix(t *testing.T) {
	a := NewAuth0("tenant.auth0.com", "aud", "client", "http://localhost:8100")
	assert.Equal(t, "tenant.auth0.com", a.Domain())
}

func TestAuth0_LoginURL(t *testing.T) {
	a := developmentEnvironment(t).Auth0()

	raw := a.LoginURL("/tabs/user-page")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "dev-t-4sg5-6.eu.auth0.com", u.Host)
	assert.Equal(t, "/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "drink", q.Get("audience"))
	assert.Equal(t, "token", q.Get("response_type"))
	assert.Equal(t, "f4abwQOHufPxU63932dw2cns9AEc3n7p", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8100/tabs/user-page", q.Get("redirect_uri"))
}
