package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextSubject is the echo context key holding the token subject.
const ContextSubject = "subject"

// Auth validates an HS256 bearer token and injects its subject into the
// context. Expired tokens are rejected by the parser.
func Auth(jwtSecret string) echo.MiddlewareFunc {
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

			sub, _ := claims.GetSubject()
			c.Set(ContextSubject, sub)

			return next(c)
		}
	}
}

// Optional returns Auth(jwtSecret) when a secret is configured and a
// pass-through middleware otherwise.
func Optional(jwtSecret string) echo.MiddlewareFunc {
	if jwtSecret == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return Auth(jwtSecret)
}
