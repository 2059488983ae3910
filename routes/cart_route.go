package routes

import (
	"github.com/gofiber/fiber/v2"

	cartController "github.com/nurhanulislamratul/Wave-03-Server-Side/controllers/carts"
)

func CartRoutes(app *fiber.App, ctrl *cartController.CartController, tokenAuth, requireBuyer fiber.Handler) {
	app.Get("/wishlist-items/:id", tokenAuth, requireBuyer, ctrl.GetWishlistItems)
	app.Get("/cart-items/:id", tokenAuth, requireBuyer, ctrl.GetCartItems)

	app.Patch("/wishlist/add", tokenAuth, requireBuyer, ctrl.AddToWishlist)
	app.Patch("/cart/add", tokenAuth, requireBuyer, ctrl.AddToCart)
}
