package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Permissions granted by the identity provider to menu managers and
// baristas.
const (
	PermissionGetDrinksDetail = "get:drinks-detail"
	PermissionPostDrinks      = "post:drinks"
	PermissionPatchDrinks     = "patch:drinks"
	PermissionDeleteDrinks    = "delete:drinks"
)

// Claims is the verified payload of an access token issued by the identity
// provider.
//
// Permissions is nil when the token carries no "permissions" claim at all,
// and empty when the claim is present but grants nothing.
type Claims struct {
	jwt.RegisteredClaims

	// Permissions lists the API permissions granted to the caller
	// (role-based access control must be enabled for the API).
	Permissions []string `json:"permissions,omitempty"`

	// Scope is the space-separated OAuth scope string.
	Scope string `json:"scope,omitempty"`

	// AuthorizedParty is the client id the token was issued to.
	AuthorizedParty string `json:"azp,omitempty"`
}

// HasPermissionsClaim reports whether the token carried a "permissions"
// claim.
func (c *Claims) HasPermissionsClaim() bool {
	return c.Permissions != nil
}

// HasPermission reports whether permission is granted.
func (c *Claims) HasPermission(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}
