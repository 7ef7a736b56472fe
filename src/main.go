package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-CorpsConnect/src/database"
	"Backend-CorpsConnect/src/jobs"
	"Backend-CorpsConnect/src/routes"
	"Backend-CorpsConnect/src/seeder"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        CorpsConnect API
// @version      1.0
// @description  Jobs, training and clearance backend for corps members.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seeder.SeedSampleData(); err != nil {
			log.Printf("Seeding sample data failed: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Static("/public", "./public")

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
