package authController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

// Tokens carry only the email claim; roles are looked up per request.
const tokenLifetime = 10 * time.Hour

type AuthController struct {
	secret string
}

func New(secret string) *AuthController {
	return &AuthController{secret: secret}
}

// IssueToken handles POST /jwt.
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var reqBody struct {
		Email string `json:"email"`
	}

	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is required",
		})
	}

	claims := jwt.MapClaims{
		"email": reqBody.Email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ac.secret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while generating jwt token",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Token issued successfully",
		Result:  &fiber.Map{"token": signed},
	})
}
