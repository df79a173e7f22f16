// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"
)

// Codes carried by [AuthError].
const (
	CodeAuthorizationHeaderMissing = "authorization_header_missing"
	CodeInvalidHeader              = "invalid_header"
	CodeTokenExpired               = "token_expired"
	CodeInvalidClaims              = "invalid_claims"
	CodeUnauthorized               = "unauthorized"
)

// Descriptions carried by [AuthError]. They are shown to API callers as the
// error message.
const (
	DescHeaderMissing      = "Authorization header is expected."
	DescNotBearerScheme    = `Authorization header must start with "Bearer".`
	DescTokenNotFound      = "Token not found."
	DescNotBearerToken     = "Authorization header must be bearer token."
	DescMalformed          = "Authorization malformed."
	DescTokenExpired       = "Token expired."
	DescIncorrectClaims    = "Incorrect claims. Please, check the audience and issuer."
	DescUnparsableToken    = "Unable to parse authentication token."
	DescKeyNotFound        = "Unable to find the appropriate key."
	DescPermissionsMissing = "Permissions not included in JWT."
	DescPermissionNotFound = "Permission not found."
)

// AuthError is a failed authentication or authorization check. StatusCode
// is the HTTP status the failure maps to.
type AuthError struct {
	Code        string
	Description string
	StatusCode  int

	// Err is the underlying cause, if any. It is never shown to callers.
	Err error
}

func newAuthError(code, description string, statusCode int, cause error) *AuthError {
	return &AuthError{
		Code:        code,
		Description: description,
		StatusCode:  statusCode,
		Err:         cause,
	}
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Description + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Description
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// AsAuthError reports whether err is, or wraps, an [*AuthError].
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

func unauthorized(code, description string, cause error) *AuthError {
	return newAuthError(code, description, http.StatusUnauthorized, cause)
}

func badRequest(code, description string, cause error) *AuthError {
	return newAuthError(code, description, http.StatusBadRequest, cause)
}
