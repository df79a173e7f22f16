package http

import (
	"net/http"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/utils"
)

// requirePermission is an HTTP middleware that admits only callers whose
// access token grants permission.
//
// It verifies the "Authorization" header via
// [service.AuthService.ParseToken], checks the "permissions" claim via
// [service.AuthService.CheckPermission] and, on success, stores the verified
// claims in the request context under [utils.ClaimsCtxKey] before delegating
// to the next handler.
//
// Rejections are written as JSON error bodies carrying the status and
// description of the returned [service.AuthError]:
//   - 401 when the header is absent, malformed, expired or signed for a
//     different issuer or audience;
//   - 400 when the token cannot be parsed, its key is unknown or it carries
//     no permissions claim;
//   - 403 when the permission is not granted.
func (h *Handler) requirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			claims, err := h.services.AuthService.ParseToken(ctx, r.Header.Get("Authorization"))
			if err != nil {
				log.Info().Err(err).Str("permission", permission).Msg("access token rejected")
				writeError(w, r, err)
				return
			}

			if err = h.services.AuthService.CheckPermission(claims, permission); err != nil {
				log.Info().Err(err).Str("permission", permission).Str("sub", claims.Subject).Msg("permission denied")
				writeError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
		})
	}
}
