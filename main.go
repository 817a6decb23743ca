package main

import (
	"io"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"megaBolaoApp/database"
	"megaBolaoApp/handlers"
	"megaBolaoApp/models"
	"megaBolaoApp/scheduler"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	db, err = database.Connect()
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Pool{}, &models.Wager{}, &models.ErrorLog{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	defer logger.Init("megaBolaoApp", true, false, io.Discard).Close()

	r := gin.Default()

	httpHandler := handlers.NewHTTPHandler(db)
	httpHandler.RegisterRoutes(r)

	scheduler.SetupCron(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on :%s. Press CTRL+C to exit.", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error running server: %v", err)
	}
}
