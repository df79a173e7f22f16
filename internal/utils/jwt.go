package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned while extracting a token from an Authorization header.
var (
	ErrAuthorizationHeaderMissing = errors.New("authorization header is missing")
	ErrNotBearerScheme            = errors.New("authorization header must start with Bearer")
	ErrTokenMissing               = errors.New("token not found")
	ErrNotBearerToken             = errors.New("authorization header must be bearer token")
)

// Errors returned while reading the unverified header of a token.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingKeyID   = errors.New("token header has no kid")
)

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
//
// Example usage:
//
//	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)

	switch {
	case len(parts) == 0:
		return "", ErrAuthorizationHeaderMissing
	case !strings.EqualFold(parts[0], "bearer"):
		return "", ErrNotBearerScheme
	case len(parts) == 1:
		return "", ErrTokenMissing
	case len(parts) > 2:
		return "", ErrNotBearerToken
	}

	return parts[1], nil
}

// TokenKeyID returns the "kid" header of tokenString without verifying the
// signature. The id selects the public key the signature must be checked
// against.
func TokenKeyID(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", errors.Join(ErrMalformedToken, err)
	}

	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return "", ErrMissingKeyID
	}

	return kid, nil
}
