package controllers

import (
	"net/http"
	"strings"
	"time"

	"voyago/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type travelOptionInput struct {
	TravelID          string          `json:"travel_id" binding:"required"`
	Type              string          `json:"type" binding:"required"`
	Source            string          `json:"source" binding:"required"`
	Destination       string          `json:"destination" binding:"required"`
	DepartureDateTime time.Time       `json:"departure_date_time" binding:"required"`
	ArrivalDateTime   time.Time       `json:"arrival_date_time" binding:"required"`
	Price             decimal.Decimal `json:"price"`
	TotalSeats        int             `json:"total_seats" binding:"required"`
	Operator          string          `json:"operator"`
}

func (in *travelOptionInput) check() string {
	if !models.ValidTravelType(in.Type) {
		return "type must be one of FLIGHT, TRAIN, BUS"
	}
	if in.Price.IsNegative() {
		return "price must not be negative"
	}
	if in.TotalSeats <= 0 {
		return "total_seats must be positive"
	}
	if !in.ArrivalDateTime.After(in.DepartureDateTime) {
		return "arrival_date_time must be after departure_date_time"
	}
	return ""
}

// AdminAddTravelOption creates a catalog entry; available seats start at full
// capacity.
func AdminAddTravelOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in travelOptionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if msg := in.check(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		var existing models.TravelOption
		if err := db.Where("travel_id = ?", in.TravelID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Travel ID already exists"})
			return
		}

		option := models.TravelOption{
			TravelID:          strings.ToUpper(strings.TrimSpace(in.TravelID)),
			Type:              in.Type,
			Source:            in.Source,
			Destination:       in.Destination,
			DepartureDateTime: in.DepartureDateTime,
			ArrivalDateTime:   in.ArrivalDateTime,
			Price:             in.Price,
			AvailableSeats:    in.TotalSeats,
			TotalSeats:        in.TotalSeats,
			Duration:          models.ComputeDuration(in.DepartureDateTime, in.ArrivalDateTime),
		}
		if in.Operator != "" {
			option.Operator = in.Operator
		}

		if err := db.Create(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create travel option"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"travel_option": option})
	}
}

// AdminUpdateTravelOption edits schedule, route, price and operator. Seat
// counters are deliberately not editable here: only the booking flow moves
// them.
func AdminUpdateTravelOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var option models.TravelOption
		if err := db.First(&option, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Travel option not found"})
			return
		}

		var in struct {
			Source            *string          `json:"source"`
			Destination       *string          `json:"destination"`
			DepartureDateTime *time.Time       `json:"departure_date_time"`
			ArrivalDateTime   *time.Time       `json:"arrival_date_time"`
			Price             *decimal.Decimal `json:"price"`
			Operator          *string          `json:"operator"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if in.Source != nil {
			option.Source = *in.Source
		}
		if in.Destination != nil {
			option.Destination = *in.Destination
		}
		if in.DepartureDateTime != nil {
			option.DepartureDateTime = *in.DepartureDateTime
		}
		if in.ArrivalDateTime != nil {
			option.ArrivalDateTime = *in.ArrivalDateTime
		}
		if in.Price != nil {
			if in.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			option.Price = *in.Price
		}
		if in.Operator != nil {
			option.Operator = *in.Operator
		}

		if !option.ArrivalDateTime.After(option.DepartureDateTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "arrival_date_time must be after departure_date_time"})
			return
		}
		option.Duration = models.ComputeDuration(option.DepartureDateTime, option.ArrivalDateTime)

		if err := db.Save(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update travel option"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"travel_option": option})
	}
}

// AdminDeleteTravelOption removes a catalog entry and, via cascade, its
// bookings.
func AdminDeleteTravelOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var option models.TravelOption
		if err := db.First(&option, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Travel option not found"})
			return
		}

		if err := db.Where("travel_option_id = ?", option.ID).Delete(&models.Booking{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bookings"})
			return
		}
		if err := db.Delete(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete travel option"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Travel option deleted successfully"})
	}
}

// AdminListTravelOptions lists the whole catalog (including departed and
// sold-out entries), optionally filtered by type or a search term.
func AdminListTravelOptions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.TravelOption{}).Order("departure_date_time asc")

		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Where(
				"LOWER(travel_id) LIKE LOWER(?) OR LOWER(source) LIKE LOWER(?) OR LOWER(destination) LIKE LOWER(?) OR LOWER(operator) LIKE LOWER(?)",
				like, like, like, like)
		}

		var options []models.TravelOption
		if err := query.Find(&options).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch travel options"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"travel_options": options})
	}
}

// GetAllBookings lists every booking with optional status filter and search
// on the owner's username or email.
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("TravelOption").Order("booking_date desc")

		if status := c.Query("status"); status != "" {
			query = query.Where("bookings.status = ?", status)
		}
		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.Joins("JOIN users ON users.id = bookings.user_id").
				Where("LOWER(users.username) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?)", like, like)
		}

		var bookings []models.Booking
		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// AdminDashboard returns headline counts and confirmed revenue.
func AdminDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalUsers, totalOptions, totalBookings, confirmedBookings int64
		db.Model(&models.User{}).Count(&totalUsers)
		db.Model(&models.TravelOption{}).Count(&totalOptions)
		db.Model(&models.Booking{}).Count(&totalBookings)
		db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed).Count(&confirmedBookings)

		var revenue decimal.NullDecimal
		db.Model(&models.Booking{}).
			Where("status = ?", models.BookingStatusConfirmed).
			Select("SUM(total_price)").
			Scan(&revenue)

		total := decimal.Zero
		if revenue.Valid {
			total = revenue.Decimal
		}

		c.JSON(http.StatusOK, gin.H{
			"total_users":        totalUsers,
			"total_options":      totalOptions,
			"total_bookings":     totalBookings,
			"confirmed_bookings": confirmedBookings,
			"confirmed_revenue":  total,
		})
	}
}
