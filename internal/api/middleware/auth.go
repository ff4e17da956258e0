package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/mathquest/platform/internal/api/metrics"
	"github.com/mathquest/platform/internal/core/ports"
	"github.com/mathquest/platform/internal/pkg/token"
)

// Context keys under which the authenticator stores the resolved principal
// and the verified token claims.
const (
	PrincipalKey = "principal"
	ClaimsKey    = "token_claims"
)

// RevocationChecker reports whether a token ID has been revoked (logout).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Authenticate verifies the bearer token, re-resolves the principal against
// the store, and attaches both to the request context. Every failure path
// degrades to "unauthenticated" and continues the chain — route-level policy
// (RequireAuth / RequireRoles) decides whether that becomes a 401.
func Authenticate(
	codec *token.Codec,
	resolver ports.PrincipalResolver,
	revoked RevocationChecker,
	skip echomiddleware.Skipper,
	log zerolog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip != nil && skip(c) {
				return next(c)
			}

			raw := bearerToken(c)
			if raw == "" {
				return next(c)
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				result := "invalid"
				if errors.Is(err, token.ErrExpired) {
					result = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("bearer token rejected")
				return next(c)
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), claims.ID)
				if err != nil {
					// Fail closed: an unreachable revocation store means the
					// token cannot be trusted.
					log.Warn().Err(err).Msg("revocation check failed, continuing unauthenticated")
					return next(c)
				}
				if isRevoked {
					metrics.TokenVerificationsTotal.WithLabelValues("revoked").Inc()
					return next(c)
				}
			}

			principal, err := resolver.ResolveByID(c.Request().Context(), claims.UserID)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("unresolved").Inc()
				log.Debug().Err(err).Uint("user_id", claims.UserID).Msg("token principal no longer resolvable")
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalKey, principal)
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// PublicPathSkipper returns a skipper matching the given path prefixes.
func PublicPathSkipper(prefixes ...string) echomiddleware.Skipper {
	return func(c echo.Context) bool {
		path := c.Request().URL.Path
		for _, prefix := range prefixes {
			if path == prefix || strings.HasPrefix(path, prefix+"/") {
				return true
			}
		}
		return false
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
