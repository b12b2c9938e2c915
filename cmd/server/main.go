package main

import (
	"log"

	"challenge-tracker-api/internal/config"
	"challenge-tracker-api/internal/database"
	"challenge-tracker-api/internal/routes"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DBPath)

	// Setup the routes (public and protected routes)
	ginRoutes := routes.SetupRoutes()

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/challenge/today")
	log.Println("  POST   /api/challenge/complete")
	log.Println("  GET    /api/streak")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
