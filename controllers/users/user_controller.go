package userController

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nurhanulislamratul/Wave-03-Server-Side/models"
	"github.com/nurhanulislamratul/Wave-03-Server-Side/responses"
)

type UserController struct {
	users    *mongo.Collection
	validate *validator.Validate
}

func New(db *mongo.Database) *UserController {
	return &UserController{
		users:    db.Collection("users"),
		validate: validator.New(),
	}
}

// GetUser handles GET /user/:email.
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := c.Params("email")

	var user models.User
	err := uc.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
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

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User fetched successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// CreateUser handles POST /users. The insert is idempotent on email: posting
// an existing email reports "user already exists" and stores nothing.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if err := uc.validate.Struct(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user data",
			Result:  &fiber.Map{"error": err.Error()},
		})
	}

	err := uc.users.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
			Status:  fiber.StatusOK,
			Message: "user already exists",
		})
	} else if err != mongo.ErrNoDocuments {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error checking user existence",
		})
	}

	user.Id = primitive.NewObjectID()
	if user.WishList == nil {
		user.WishList = []primitive.ObjectID{}
	}
	if user.Cart == nil {
		user.Cart = []primitive.ObjectID{}
	}

	if _, err := uc.users.InsertOne(ctx, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in saving user, please try again later",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User created successfully",
		Result:  &fiber.Map{"user": user},
	})
}

// ListUsers handles GET /users.
func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := uc.users.Find(ctx, bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching users",
		})
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error parsing users",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Users fetched successfully",
		Result:  &fiber.Map{"users": users},
	})
}

// ApproveSeller handles PATCH /approveSeller/:id.
func (uc *UserController) ApproveSeller(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	update := bson.M{"$set": bson.M{"status": models.StatusApproved}}
	result, err := uc.users.UpdateOne(ctx, bson.M{"_id": objectId}, update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error approving seller",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "Seller approved",
		Result:  &fiber.Map{"matchedCount": result.MatchedCount, "modifiedCount": result.ModifiedCount},
	})
}

// DeleteUser handles DELETE /user/:id. Deleting an id that matches nothing is
// reported through deletedCount, not an error.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.UserResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user ID format",
		})
	}

	result, err := uc.users.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.UserResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting user",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.UserResponse{
		Status:  fiber.StatusOK,
		Message: "User deleted",
		Result:  &fiber.Map{"deletedCount": result.DeletedCount},
	})
}
