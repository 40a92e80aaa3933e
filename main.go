package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Present111/travel-booking-api/cron"
	"github.com/Present111/travel-booking-api/db"
	"github.com/Present111/travel-booking-api/redis"
	"github.com/Present111/travel-booking-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Travel booking API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupBookingRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
