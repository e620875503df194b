package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys populated from verified token claims.
const (
	KeySubject = "subject"
	KeyEmail   = "email"
	KeyName    = "name"
	KeyPicture = "picture"
)

// Auth validates the identity-provider session JWT and injects its claims
// into context. Requests without a valid token are rejected with 401.
// An empty issuer disables the issuer check.
func Auth(jwtSecret, issuer string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := verify(c, jwtSecret, issuer)
			if err != nil {
				return err
			}
			setClaims(c, claims)
			return next(c)
		}
	}
}

// OptionalAuth injects claims when a valid token is present and lets the
// request through anonymously otherwise. Handlers behind it decide what an
// empty subject means.
func OptionalAuth(jwtSecret, issuer string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := verify(c, jwtSecret, issuer); err == nil {
				setClaims(c, claims)
			}
			return next(c)
		}
	}
}

func verify(c echo.Context, jwtSecret, issuer string) (jwt.MapClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if issuer != "" {
		iss, _ := claims["iss"].(string)
		if iss != issuer {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer")
		}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}

	return claims, nil
}

func setClaims(c echo.Context, claims jwt.MapClaims) {
	c.Set(KeySubject, claims["sub"])
	c.Set(KeyEmail, claims["email"])
	c.Set(KeyName, claims["name"])
	c.Set(KeyPicture, claims["picture"])
}
