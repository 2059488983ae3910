package routes

import (
	"github.com/gofiber/fiber/v2"

	productController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/products"
)

func ProductRoutes(app *fiber.App, ctrl *productController.ProductController, tokenAuth, requireSeller fiber.Handler) {
	app.Get("/products/:email", ctrl.GetSellerProducts)
	app.Get("/product/:id", ctrl.GetProduct)

	// Any authenticated identity may browse the catalog.
	app.Get("/products", tokenAuth, ctrl.GetCatalog)

	app.Post("/add-product", tokenAuth, requireSeller, ctrl.AddProduct)
	app.Patch("/update-product/:id", tokenAuth, requireSeller, ctrl.UpdateProduct)
	app.Delete("/product/:id", tokenAuth, requireSeller, ctrl.DeleteProduct)
}
