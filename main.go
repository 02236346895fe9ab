package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bhinnashad-api/config"
	"bhinnashad-api/controllers"
	"bhinnashad-api/events"
	"bhinnashad-api/routes"
	"bhinnashad-api/seeders"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment")
	}

	// connect db
	config.ConnectDatabase()

	// event publisher (optional: no-op without a broker)
	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		publisher, err := events.NewAMQPPublisher(amqpURL)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: ", err)
		}
		defer publisher.Close()
		controllers.Publisher = publisher
	}

	// init router
	r := gin.Default()

	// CORS before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// routes
	routes.RegisterRoutes(r)

	// seed data
	seeders.Seed()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
