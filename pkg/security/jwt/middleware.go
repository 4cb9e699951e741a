package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromHeader(c.Get("Authorization"))
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		claims, err := parseToken(tokenStr, secretBytes, expectedIssuer)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		c.Locals("userId", claims.Subject)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware sets c.Locals("userId") when a valid token
// is present and continues either way. Public endpoints use it to
// attach per-user state without requiring a login.
func NewOptionalAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		if tokenStr := tokenFromHeader(c.Get("Authorization")); tokenStr != "" {
			if claims, err := parseToken(tokenStr, secretBytes, expectedIssuer); err == nil {
				c.Locals("userId", claims.Subject)
			}
		}
		return c.Next()
	}
}

// tokenFromHeader accepts both "Bearer <token>" and a bare token
// (for non-standard clients).
func tokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func parseToken(tokenStr string, secret []byte, expectedIssuer string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, fiber.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	if expectedIssuer != "" && claims.Issuer != expectedIssuer {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
