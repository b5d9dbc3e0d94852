package controllers

import (
	"net/http"
	"time"

	"voyago/middlewares"
	"voyago/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProfile returns the caller's account, profile and five most recent
// bookings.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var recentBookings []models.Booking
		if err := db.Preload("TravelOption").
			Where("user_id = ?", userID).
			Order("booking_date desc").
			Limit(5).
			Find(&recentBookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":            user,
			"recent_bookings": recentBookings,
		})
	}
}

// UpdateProfile updates account fields plus the 1:1 profile row.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			FirstName   string `json:"first_name"`
			LastName    string `json:"last_name"`
			Email       string `json:"email" binding:"omitempty,email"`
			Phone       string `json:"phone"`
			Address     string `json:"address"`
			DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		user.FirstName = input.FirstName
		user.LastName = input.LastName
		if input.Email != "" {
			var other models.User
			if err := db.Where("email = ? AND id <> ?", input.Email, userID).First(&other).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
			user.Email = input.Email
		}
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		profile := user.Profile
		if profile == nil {
			profile = &models.UserProfile{UserID: userID}
		}
		profile.Phone = input.Phone
		profile.Address = input.Address
		if input.DateOfBirth != "" {
			dob, err := time.Parse("2006-01-02", input.DateOfBirth)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth, expected YYYY-MM-DD"})
				return
			}
			profile.DateOfBirth = &dob
		}
		if err := db.Save(profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Profile updated successfully!",
			"user":    user,
			"profile": profile,
		})
	}
}
