package userController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type envelope struct {
	Status  int                    `json:"status"`
	Message string                 `json:"message"`
	Result  map[string]interface{} `json:"result"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func userApp(uc *UserController) *fiber.App {
	app := fiber.New()
	app.Get("/user/:email", uc.GetUser)
	app.Post("/users", uc.CreateUser)
	app.Get("/users", uc.ListUsers)
	app.Patch("/approveSeller/:id", uc.ApproveSeller)
	app.Delete("/user/:id", uc.DeleteUser)
	return app
}

func postJSON(path, payload string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts a new user", func(mt *mtest.T) {
		usersNs := mt.DB.Name() + ".users"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, usersNs, mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		app := userApp(New(mt.DB))
		resp, err := app.Test(postJSON("/users", `{"email":"a@x.com","name":"A","role":"buyer"}`))
		require.NoError(mt.T, err)
		require.Equal(mt.T, http.StatusOK, resp.StatusCode)

		body := decodeEnvelope(mt.T, resp)
		assert.Equal(mt.T, "User created successfully", body.Message)

		user, ok := body.Result["user"].(map[string]interface{})
		require.True(mt.T, ok)
		assert.NotEmpty(mt.T, user["id"])
		assert.Equal(mt.T, "a@x.com", user["email"])
	})

	mt.Run("repeated insert reports user already exists", func(mt *mtest.T) {
		usersNs := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNs, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
		}))

		app := userApp(New(mt.DB))
		resp, err := app.Test(postJSON("/users", `{"email":"a@x.com"}`))
		require.NoError(mt.T, err)
		require.Equal(mt.T, http.StatusOK, resp.StatusCode)

		body := decodeEnvelope(mt.T, resp)
		assert.Equal(mt.T, "user already exists", body.Message)

		// Only the existence check should have hit the database.
		events := mt.GetAllStartedEvents()
		require.Len(mt.T, events, 1)
		assert.Equal(mt.T, "find", events[0].CommandName)
	})

	mt.Run("rejects an invalid email", func(mt *mtest.T) {
		app := userApp(New(mt.DB))
		resp, err := app.Test(postJSON("/users", `{"email":"not-an-email"}`))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusBadRequest, resp.StatusCode)
	})

	mt.Run("rejects an unknown role", func(mt *mtest.T) {
		app := userApp(New(mt.DB))
		resp, err := app.Test(postJSON("/users", `{"email":"a@x.com","role":"superuser"}`))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the stored document", func(mt *mtest.T) {
		usersNs := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(1, usersNs, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
			{Key: "role", Value: "seller"},
			{Key: "status", Value: "approved"},
		}))

		app := userApp(New(mt.DB))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user/a@x.com", nil))
		require.NoError(mt.T, err)
		require.Equal(mt.T, http.StatusOK, resp.StatusCode)

		body := decodeEnvelope(mt.T, resp)
		user, ok := body.Result["user"].(map[string]interface{})
		require.True(mt.T, ok)
		assert.Equal(mt.T, "a@x.com", user["email"])
		assert.Equal(mt.T, "approved", user["status"])
	})

	mt.Run("missing user is not found", func(mt *mtest.T) {
		usersNs := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNs, mtest.FirstBatch))

		app := userApp(New(mt.DB))
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/user/nobody@x.com", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusNotFound, resp.StatusCode)
	})
}

func TestApproveSeller(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sets status approved", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		app := userApp(New(mt.DB))
		req := httptest.NewRequest(http.MethodPatch, "/approveSeller/"+primitive.NewObjectID().Hex(), nil)
		resp, err := app.Test(req)
		require.NoError(mt.T, err)
		require.Equal(mt.T, http.StatusOK, resp.StatusCode)

		evt := mt.GetStartedEvent()
		require.NotNil(mt.T, evt)
		status, err := evt.Command.LookupErr("updates", "0", "u", "$set", "status")
		require.NoError(mt.T, err)
		assert.Equal(mt.T, "approved", status.StringValue())
	})

	mt.Run("malformed id is a bad request", func(mt *mtest.T) {
		app := userApp(New(mt.DB))
		resp, err := app.Test(httptest.NewRequest(http.MethodPatch, "/approveSeller/xyz", nil))
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports the deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		app := userApp(New(mt.DB))
		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/user/"+primitive.NewObjectID().Hex(), nil))
		require.NoError(mt.T, err)
		require.Equal(mt.T, http.StatusOK, resp.StatusCode)

		body := decodeEnvelope(mt.T, resp)
		assert.Equal(mt.T, float64(1), body.Result["deletedCount"])
	})
}
