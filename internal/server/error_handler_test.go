package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerAlwaysAnswersJSON(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("db exploded")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	t.Run("Plain error becomes a 500 JSON envelope", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

		body := decodeBody(t, resp)
		assert.Equal(t, "An error occured!", body["message"])
	})

	t.Run("Fiber error keeps its status", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "short and stout", body["message"])
	})

	t.Run("Unknown route still answers JSON", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

		body := decodeBody(t, resp)
		assert.NotEmpty(t, body["message"])
	})
}
