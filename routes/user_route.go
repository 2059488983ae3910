package routes

import (
	"github.com/gofiber/fiber/v2"

	userController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/users"
)

func UserRoutes(app *fiber.App, ctrl *userController.UserController, tokenAuth, requireAdmin fiber.Handler) {
	app.Get("/user/:email", ctrl.GetUser)
	app.Post("/users", ctrl.CreateUser)

	app.Get("/users", tokenAuth, requireAdmin, ctrl.ListUsers)
	app.Patch("/approveSeller/:id", tokenAuth, requireAdmin, ctrl.ApproveSeller)
	app.Delete("/user/:id", tokenAuth, requireAdmin, ctrl.DeleteUser)
}
