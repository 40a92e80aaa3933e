package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func registeredPaths(app *fiber.App, method string) map[string]bool {
	paths := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		if r.Method == method {
			paths[r.Path] = true
		}
	}
	return paths
}

func TestProviderRoutesCoverInventoryReads(t *testing.T) {
	app := fiber.New()
	SetupProviderRoutes(app)

	gets := registeredPaths(app, fiber.MethodGet)
	for _, path := range []string{
		"/api/hotels/:id",
		"/api/hotels/:id/rooms",
		"/api/rooms/:id",
		"/api/restaurants/:id",
		"/api/restaurants/:id/tables",
		"/api/tables/:id",
		"/api/coffees/:id",
	} {
		assert.True(t, gets[path], "expected GET %s to be registered", path)
	}
}
