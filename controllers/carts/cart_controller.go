package cartController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/models"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

// CartController serves the wishlist and cart membership endpoints. Both are
// ObjectID sets on the user document, so the two differ only in the field they
// touch.
type CartController struct {
	users    *mongo.Collection
	products *mongo.Collection
}

func New(db *mongo.Database) *CartController {
	return &CartController{
		users:    db.Collection("users"),
		products: db.Collection("products"),
	}
}

type addItemRequest struct {
	Email     string `json:"email"`
	ProductId string `json:"productId"`
}

// AddToWishlist handles PATCH /wishlist/add.
func (cc *CartController) AddToWishlist(c *fiber.Ctx) error {
	return cc.addMember(c, "wishList")
}

// AddToCart handles PATCH /cart/add.
func (cc *CartController) AddToCart(c *fiber.Ctx) error {
	return cc.addMember(c, "cart")
}

// addMember inserts a product id into the named set field. $addToSet with
// upsert makes the call atomic and idempotent: re-adding a present id changes
// nothing, and a missing user document is created on the fly.
func (cc *CartController) addMember(c *fiber.Ctx, field string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody addItemRequest
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" || reqBody.ProductId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email and Product ID are required",
		})
	}

	productId, err := primitive.ObjectIDFromHex(reqBody.ProductId)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	update := bson.M{"$addToSet": bson.M{field: productId}}
	result, err := cc.users.UpdateOne(ctx, bson.M{"email": reqBody.Email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating " + field,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result:  &fiber.Map{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount, "upsertedCount": result.UpsertedCount},
	})
}

// GetWishlistItems handles GET /wishlist-items/:id.
func (cc *CartController) GetWishlistItems(c *fiber.Ctx) error {
	return cc.memberItems(c, func(u models.User) []primitive.ObjectID { return u.WishList })
}

// GetCartItems handles GET /cart-items/:id.
func (cc *CartController) GetCartItems(c *fiber.Ctx) error {
	return cc.memberItems(c, func(u models.User) []primitive.ObjectID { return u.Cart })
}

// memberItems hydrates a user's id set into product documents. The response is
// always a list, empty included; ids whose product has been deleted are
// silently dropped by the $in query.
func (cc *CartController) memberItems(c *fiber.Ctx, pick func(models.User) []primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	var user models.User
	err = cc.users.FindOne(ctx, bson.M{"_id": objectId}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching user",
		})
	}

	items := []models.Product{}
	if ids := pick(user); len(ids) > 0 {
		cursor, err := cc.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error fetching products",
			})
		}
		if err := cursor.All(ctx, &items); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error parsing products",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Items fetched successfully",
		Result:  &fiber.Map{"items": items},
	})
}
