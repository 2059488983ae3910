package routes

import (
	"github.com/gofiber/fiber/v2"

	authController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/auth"
)

func AuthRoutes(app *fiber.App, ctrl *authController.AuthController) {
	app.Post("/jwt", ctrl.IssueToken)
}
