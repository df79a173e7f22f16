package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/adapter"
	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/utils"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/golang-jwt/jwt/v5"
)

// minKeyRefreshInterval limits how often an unknown kid may trigger a key
// set download.
const minKeyRefreshInterval = 30 * time.Second

// authService verifies RS256 access tokens against the key set of the
// identity provider.
//
// Keys are cached by kid. A token signed with an unknown kid triggers a
// refresh, at most once per minRefreshInterval; the key refresher worker
// calls RefreshKeys periodically as well.
type authService struct {
	keySetProvider adapter.KeySetProvider

	// issuer and audience are the expected "iss" and "aud" claims.
	issuer   string
	audience string

	minRefreshInterval time.Duration
	now                func() time.Time

	mu   sync.RWMutex
	keys adapter.KeySet

	// refreshMu serialises downloads; lastAttempt is guarded by it.
	refreshMu   sync.Mutex
	lastAttempt time.Time

	logger *logger.Logger
}

// NewAuthService builds an [AuthService] accepting tokens issued by the
// tenant described by auth0 for its audience. The key cache starts empty
// and is filled on first use.
func NewAuthService(keySetProvider adapter.KeySetProvider, auth0 config.Auth0, logger *logger.Logger) AuthService {
	return &authService{
		keySetProvider:     keySetProvider,
		issuer:             auth0.Issuer(),
		audience:           auth0.Audience(),
		minRefreshInterval: minKeyRefreshInterval,
		now:                time.Now,
		keys:               adapter.KeySet{},
		logger:             logger,
	}
}

func (a *authService) ParseToken(ctx context.Context, authorizationHeader string) (*models.Claims, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		return nil, headerError(err)
	}

	kid, err := utils.TokenKeyID(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("token header cannot be read")
		return nil, unauthorized(CodeInvalidHeader, DescMalformed, err)
	}

	key, err := a.publicKey(ctx, kid)
	if err != nil {
		log.Warn().Err(err).Str("kid", kid).Msg("no signing key for token")
		return nil, badRequest(CodeInvalidHeader, DescKeyNotFound, err)
	}

	claims := &models.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(a.issuer),
		jwt.WithAudience(a.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		log.Debug().Err(err).Str("kid", kid).Msg("token rejected")
		return nil, tokenError(err)
	}

	return claims, nil
}

func (a *authService) CheckPermission(claims *models.Claims, permission string) error {
	if claims == nil || !claims.HasPermissionsClaim() {
		return badRequest(CodeInvalidClaims, DescPermissionsMissing, nil)
	}

	if !claims.HasPermission(permission) {
		return newAuthError(CodeUnauthorized, DescPermissionNotFound, http.StatusForbidden, nil)
	}

	return nil
}

func (a *authService) RefreshKeys(ctx context.Context) error {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	return a.refreshLocked(ctx)
}

// publicKey returns the cached key for kid, refreshing the cache once if
// kid is unknown and the last download is old enough.
func (a *authService) publicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := a.cachedKey(kid); ok {
		return key, nil
	}

	a.refreshMu.Lock()
	// another request may have refreshed while this one waited
	if key, ok := a.cachedKey(kid); ok {
		a.refreshMu.Unlock()
		return key, nil
	}

	var err error
	if a.now().Sub(a.lastAttempt) >= a.minRefreshInterval {
		err = a.refreshLocked(ctx)
	}
	a.refreshMu.Unlock()

	if err != nil {
		return nil, err
	}

	if key, ok := a.cachedKey(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("%w: kid %q", ErrKeyNotFound, kid)
}

func (a *authService) cachedKey(kid string) (*rsa.PublicKey, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	key, ok := a.keys[kid]
	return key, ok
}

func (a *authService) refreshLocked(ctx context.Context) error {
	a.lastAttempt = a.now()

	keys, err := a.keySetProvider.FetchKeySet(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.refreshLocked").Msg("failed to refresh signing keys")
		return fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}

	a.mu.Lock()
	a.keys = keys
	a.mu.Unlock()

	a.logger.Debug().Int("keys", len(keys)).Msg("signing keys refreshed")
	return nil
}

func headerError(err error) *AuthError {
	switch {
	case errors.Is(err, utils.ErrAuthorizationHeaderMissing):
		return unauthorized(CodeAuthorizationHeaderMissing, DescHeaderMissing, err)
	case errors.Is(err, utils.ErrNotBearerScheme):
		return unauthorized(CodeInvalidHeader, DescNotBearerScheme, err)
	case errors.Is(err, utils.ErrTokenMissing):
		return unauthorized(CodeInvalidHeader, DescTokenNotFound, err)
	default:
		return unauthorized(CodeInvalidHeader, DescNotBearerToken, err)
	}
}

func tokenError(err error) *AuthError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return unauthorized(CodeTokenExpired, DescTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return unauthorized(CodeInvalidClaims, DescIncorrectClaims, err)
	default:
		return badRequest(CodeInvalidHeader, DescUnparsableToken, err)
	}
}
