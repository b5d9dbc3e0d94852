package controllers

import (
	"fmt"
	"net/http"
	"time"

	"voyago/middlewares"
	"voyago/models"
	"voyago/services"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBooking reserves seats on a travel option for the logged-in user.
func CreateBooking(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewBookingService(db)
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input services.CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
			return
		}

		booking, err := svc.CreateBooking(userID, input)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": fmt.Sprintf("Booking %s confirmed successfully!", booking.BookingID),
			"booking": booking,
		})
	}
}

// GetUserBookings lists the caller's bookings, split into current and past.
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewBookingService(db)
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		bookings, err := svc.ListBookings(userID, c.Query("status"))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		now := time.Now()
		current := make([]models.Booking, 0)
		past := make([]models.Booking, 0)
		for _, b := range bookings {
			if b.Status == models.BookingStatusConfirmed && b.TravelOption.DepartureDateTime.After(now) {
				current = append(current, b)
			} else {
				past = append(past, b)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"current_bookings": current,
			"past_bookings":    past,
		})
	}
}

// GetBookingDetails returns one booking owned by the caller.
func GetBookingDetails(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewBookingService(db)
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		booking, err := svc.GetBooking(userID, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"booking":    booking,
			"passengers": booking.PassengerList(),
		})
	}
}

// CancelBooking releases a confirmed booking's seats.
func CancelBooking(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewBookingService(db)
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ref := c.Param("id")
		if err := svc.CancelBooking(userID, ref); err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Booking %s has been cancelled successfully.", ref),
		})
	}
}

// DownloadBookingReceipt streams the PDF confirmation for a booking.
func DownloadBookingReceipt(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewBookingService(db)
	return func(c *gin.Context) {
		userID, ok := middlewares.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		booking, err := svc.GetBooking(userID, c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		pdfBytes, err := utils.BuildBookingReceipt(booking)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", booking.BookingID))
		c.Data(http.StatusOK, "application/pdf", pdfBytes)
	}
}
