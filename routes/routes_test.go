package routes_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"catalog/routes"
)

// The store stays nil here. These tests only touch routes that never reach
// it: the health probe and mutating routes rejected by the token gate.
func wiredApp() *fiber.App {
	app := fiber.New()
	routes.RegisterRoutes(app, nil, "wiring-token")
	return app
}

func TestHealthRoute(t *testing.T) {
	app := wiredApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, map[string]interface{}{"status": "ok"}, body)
}

func TestMutatingRoutesAreGated(t *testing.T) {
	app := wiredApp()

	for _, tc := range []struct {
		method string
		target string
	}{
		{fiber.MethodPost, "/admin/products"},
		{fiber.MethodPatch, "/admin/products/1"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestNoMutationOutsideAdminPrefix(t *testing.T) {
	app := wiredApp()

	for _, tc := range []struct {
		method string
		target string
	}{
		{fiber.MethodPost, "/products"},
		{fiber.MethodPatch, "/products/1"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.target, nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}
