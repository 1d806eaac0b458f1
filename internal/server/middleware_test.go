package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	app := fiber.New()
	s := &Server{config: testConfig()}

	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": c.Locals("userID")})
	})
	return app, s
}

func TestAuthRequired(t *testing.T) {
	app, s := newAuthTestApp(t)

	token, err := s.generateToken(42)
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"Missing header", "", http.StatusForbidden},
		{"Garbage token", "not-a-token", http.StatusForbidden},
		{"Bearer prefixed token", "Bearer " + token, http.StatusOK},
		{"Bare token", token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, resp)
				assert.Equal(t, float64(42), body["userId"])
			} else {
				body := decodeBody(t, resp)
				assert.Equal(t, "You are not logged in", body["message"])
			}
		})
	}
}

func TestAuthRequiredRejectsTokenSignedWithOtherSecret(t *testing.T) {
	app, _ := newAuthTestApp(t)

	other := &Server{config: testConfig()}
	other.config.JWTSecret = "some_other_secret"
	token, err := other.generateToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
