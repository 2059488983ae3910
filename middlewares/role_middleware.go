package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/models"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

// RequireRole gates a route on the stored role of the authenticated email.
// Exactly one lookup, no caching; a handler that needs the user re-queries it.
// An email with no user document is forbidden, same as a role mismatch.
func RequireRole(users *mongo.Collection, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		email, _ := c.Locals("email").(string)

		var user models.User
		err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusForbidden).JSON(responses.UserResponse{
				Status:  fiber.StatusForbidden,
				Message: "Forbidden access",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error checking user role",
			})
		}

		if user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(responses.UserResponse{
				Status:  fiber.StatusForbidden,
				Message: "Forbidden access",
			})
		}

		return c.Next()
	}
}

func RequireBuyer(users *mongo.Collection) fiber.Handler {
	return RequireRole(users, models.RoleBuyer)
}

func RequireSeller(users *mongo.Collection) fiber.Handler {
	return RequireRole(users, models.RoleSeller)
}

func RequireAdmin(users *mongo.Collection) fiber.Handler {
	return RequireRole(users, models.RoleAdmin)
}
