package utils

import (
	"log"
	"os"

	"voyago/models"

	"gorm.io/gorm"
)

// EnsureAdminUser creates the admin account from ADMIN_USERNAME /
// ADMIN_EMAIL / ADMIN_PASSWORD if it does not exist yet. Safe to call on
// every boot.
func EnsureAdminUser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		return
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Printf("admin seed: failed to hash password: %v", err)
		return
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("admin seed: failed to create admin user: %v", err)
		return
	}
	log.Printf("admin seed: created admin user %q", username)
}
