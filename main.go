package main

import (
	"fmt"
	"log"
	"os"

	"voyago/config"
	"voyago/models"
	"voyago/routes"
	"voyago/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.EnsureAdminUser(db)

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Printf("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.UserProfile{},
		&models.TravelOption{},
		&models.Booking{},
	)
}
