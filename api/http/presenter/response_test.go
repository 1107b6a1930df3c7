package presenter

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_EchoesRequestID(t *testing.T) {
	app := fiber.New()
	app.Get("/with", func(c *fiber.Ctx) error {
		c.Locals("requestId", "rid-1")
		return Error(c, fiber.StatusBadRequest, "bad")
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "missing")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, ErrorResponse{Message: "bad", RequestID: "rid-1"}, out)

	resp, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, map[string]any{"message": "missing"}, raw)
}
