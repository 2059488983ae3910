package middlewares

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

// TokenAuth returns the bearer-token verification middleware. On success the
// email claim is stored in Locals("email") for the role gates and handlers.
func TokenAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "No auth token, access denied",
			})
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid authorization header format",
			})
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Token verification failed, access denied",
			})
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(responses.UserResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Email not found in token",
			})
		}

		c.Locals("email", email)
		return c.Next()
	}
}
