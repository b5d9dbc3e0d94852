package controllers

import (
	"net/http"
	"strconv"
	"time"

	"voyago/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListTravelOptions searches the catalog with filters, sorting and
// fixed-size pagination.
func ListTravelOptions(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCatalogService(db)
	return func(c *gin.Context) {
		filters := services.SearchFilters{
			Type:        c.Query("type"),
			Source:      c.Query("source"),
			Destination: c.Query("destination"),
			SortBy:      c.Query("sort_by"),
		}

		if v := c.Query("date_from"); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_from, expected YYYY-MM-DD"})
				return
			}
			filters.DateFrom = &t
		}
		if v := c.Query("date_to"); v != "" {
			t, err := time.Parse("2006-01-02", v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_to, expected YYYY-MM-DD"})
				return
			}
			filters.DateTo = &t
		}
		if v := c.Query("max_price"); v != "" {
			p, err := decimal.NewFromString(v)
			if err != nil || p.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filters.MaxPrice = &p
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		result, err := svc.Search(filters, page)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"travel_options": result.Options,
			"total_count":    result.TotalCount,
			"page":           result.Page,
			"total_pages":    result.TotalPages,
			"page_size":      services.CatalogPageSize,
		})
	}
}

// FeaturedTravelOptions lists the next six bookable departures.
func FeaturedTravelOptions(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCatalogService(db)
	return func(c *gin.Context) {
		options, err := svc.Featured(6)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"featured_options": options})
	}
}

// GetTravelOptionDetails returns one option plus up to three similar ones on
// the same route.
func GetTravelOptionDetails(db *gorm.DB) gin.HandlerFunc {
	svc := services.NewCatalogService(db)
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid travel option ID"})
			return
		}

		option, err := svc.GetTravelOption(uint(id))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		similar, err := svc.SimilarOptions(option, 3)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"option":          option,
			"similar_options": similar,
		})
	}
}
