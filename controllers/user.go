package controllers

import (
	"net/http"

	"voyago/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllUsers - Admin fetch all users with booking counts.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User

		query := db.Model(&models.User{}).Preload("Bookings").Preload("Profile")

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where("LOWER(username) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
		}

		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		type userSummary struct {
			models.User
			BookingsCount int `json:"bookings_count"`
		}
		summaries := make([]userSummary, 0, len(users))
		for _, u := range users {
			summaries = append(summaries, userSummary{User: u, BookingsCount: len(u.Bookings)})
		}

		c.JSON(http.StatusOK, gin.H{"users": summaries})
	}
}

// DeleteUser removes an account along with its profile and bookings.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if err := db.Where("user_id = ?", user.ID).Delete(&models.Booking{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user bookings"})
			return
		}
		if err := db.Where("user_id = ?", user.ID).Delete(&models.UserProfile{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user profile"})
			return
		}
		if err := db.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user sessions"})
			return
		}
		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
