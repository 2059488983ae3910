package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/configs"
	authController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/auth"
	cartController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/carts"
	productController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/products"
	userController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/users"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/middlewares"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/routes"
)

func main() {
	configs.LoadEnv()

	client := configs.ConnectDB()
	db := configs.GetDatabase(client)
	secret := configs.EnvTokenSecret()

	app := fiber.New(fiber.Config{
		AppName: "CoolWave Server",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"status":  code,
				"message": msg,
			})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})

	users := db.Collection("users")
	tokenAuth := middlewares.TokenAuth(secret)
	requireBuyer := middlewares.RequireBuyer(users)
	requireSeller := middlewares.RequireSeller(users)
	requireAdmin := middlewares.RequireAdmin(users)

	routes.AuthRoutes(app, authController.New(secret))
	routes.UserRoutes(app, userController.New(db), tokenAuth, requireAdmin)
	routes.ProductRoutes(app, productController.New(db), tokenAuth, requireSeller)
	routes.CartRoutes(app, cartController.New(db), tokenAuth, requireBuyer)

	log.Fatal(app.Listen(":" + configs.EnvPort()))
}
