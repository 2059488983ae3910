package productController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/models"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

type ProductController struct {
	products *mongo.Collection
	validate *validator.Validate
}

func New(db *mongo.Database) *ProductController {
	return &ProductController{
		products: db.Collection("products"),
		validate: validator.New(),
	}
}

// GetCatalog handles GET /products with the optional search, brand, category
// and sorting query parameters. Tie order is left to the store.
func (pc *ProductController) GetCatalog(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := CatalogFilter(c.Query("search"), c.Query("brand"), c.Query("category"))

	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "priceInt", Value: PriceSortOrder(c.Query("sorting"))}})

	cursor, err := pc.products.Find(ctx, filter, findOptions)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched successfully",
		Result:  &fiber.Map{"products": products},
	})
}

// GetSellerProducts handles GET /products/:email.
func (pc *ProductController) GetSellerProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := c.Params("email")

	cursor, err := pc.products.Find(ctx, bson.M{"sellerEmail": email})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching products",
		})
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched successfully",
		Result:  &fiber.Map{"products": products},
	})
}

// GetProduct handles GET /product/:id.
func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	err = pc.products.FindOne(ctx, bson.M{"_id": objectId}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.UserResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product details",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product fetched successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// AddProduct handles POST /add-product.
func (pc *ProductController) AddProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
		})
	}

	if err := pc.validate.Struct(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product data",
			Result:  &fiber.Map{"error": err.Error()},
		})
	}

	product.Id = primitive.NewObjectID()
	if _, err := pc.products.InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error inserting product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product added successfully",
		Result:  &fiber.Map{"product": product},
	})
}

// UpdateProduct handles PATCH /update-product/:id. The update is a full-field
// replace with upsert, matching the storefront's edit form.
func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error parsing product data",
		})
	}

	update := bson.M{"$set": bson.M{
		"sellerEmail": product.SellerEmail,
		"brand":       product.Brand,
		"category":    product.Category,
		"title":       product.Title,
		"stockInt":    product.Stock,
		"priceInt":    product.Price,
		"photo":       product.Photo,
		"description": product.Description,
	}}

	result, err := pc.products.UpdateOne(ctx, bson.M{"_id": objectId}, update, options.Update().SetUpsert(true))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product updated successfully",
		Result:  &fiber.Map{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount, "upsertedCount": result.UpsertedCount},
	})
}

// DeleteProduct handles DELETE /product/:id. Wishlist and cart entries that
// reference the deleted id are left in place; hydration simply drops them.
func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	result, err := pc.products.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Product deleted",
		Result:  &fiber.Map{"deletedCount": result.DeletedCount},
	})
}
