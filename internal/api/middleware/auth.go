package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// RevocationChecker reports whether an account's live tokens were revoked
// (the account was deactivated after the token was issued).
type RevocationChecker interface {
	IsRevoked(ctx context.Context, accountID string) (bool, error)
}

// Auth validates the bearer JWT and injects the actor's identity into the
// request context. A nil checker skips the revocation lookup.
func Auth(jwtSecret string, revoked RevocationChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			accountID, _ := claims["sub"].(string)
			if revoked != nil && accountID != "" {
				// A Redis failure does not lock everyone out; the token's own
				// expiry still bounds the exposure.
				if hit, err := revoked.IsRevoked(c.Request().Context(), accountID); err == nil && hit {
					return echo.NewHTTPError(http.StatusUnauthorized, "credentials revoked")
				}
			}

			c.Set("account_id", accountID)
			c.Set("role", claims["role"])
			c.Set("name", claims["name"])

			return next(c)
		}
	}
}
