package http

import (
	"strings"

	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ownerKey = "ownerID"

// UserHeader carries the caller id when an upstream gateway has already
// authenticated the request.
const UserHeader = "X-User-ID"

// AuthMiddleware resolves the caller. With a secret configured only HS256
// bearer tokens whose subject is a uuid are accepted; without one the
// gateway header is trusted.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			owner uuid.UUID
			err   error
		)
		if secret != "" {
			owner, err = ownerFromToken(c.Get(fiber.HeaderAuthorization), []byte(secret))
		} else {
			owner, err = uuid.Parse(strings.TrimSpace(c.Get(UserHeader)))
		}
		if err != nil || owner == uuid.Nil {
			return writeError(c, &domain.UnauthorizedError{Message: "missing or invalid credentials"})
		}
		c.Locals(ownerKey, owner)
		return c.Next()
	}
}

func ownerFromToken(header string, secret []byte) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return uuid.Nil, jwt.ErrTokenMalformed
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}

func ownerFrom(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(ownerKey).(uuid.UUID)
	return id
}
