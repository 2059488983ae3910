package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// gateApp wires a gate behind a stub that plays the part of TokenAuth.
func gateApp(users *mongo.Collection, role string) *fiber.App {
	app := fiber.New()
	app.Get("/gated",
		func(c *fiber.Ctx) error {
			c.Locals("email", "someone@example.com")
			return c.Next()
		},
		RequireRole(users, role),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
	)
	return app
}

func userDoc(role string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "email", Value: "someone@example.com"},
		{Key: "role", Value: role},
	}
}

func TestRequireRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matching role passes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "coolWave.users", mtest.FirstBatch, userDoc("buyer")))

		app := gateApp(mt.Coll, "buyer")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, resp.StatusCode)
	})

	mt.Run("role mismatch is forbidden", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "coolWave.users", mtest.FirstBatch, userDoc("buyer")))

		app := gateApp(mt.Coll, "seller")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusForbidden, resp.StatusCode)
	})

	mt.Run("unknown email is forbidden", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "coolWave.users", mtest.FirstBatch))

		app := gateApp(mt.Coll, "admin")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusForbidden, resp.StatusCode)
	})

	mt.Run("empty stored role never matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "coolWave.users", mtest.FirstBatch, userDoc("")))

		app := gateApp(mt.Coll, "buyer")
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusForbidden, resp.StatusCode)
	})
}
