package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"voyago/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalogOption(t *testing.T, db *gorm.DB, travelType, source, destination, price string, departure time.Time, available int) models.TravelOption {
	t.Helper()
	arrival := departure.Add(3 * time.Hour)
	option := models.TravelOption{
		TravelID:          fmt.Sprintf("CT%05d", atomic.AddInt64(&seedSeq, 1)),
		Type:              travelType,
		Source:            source,
		Destination:       destination,
		DepartureDateTime: departure,
		ArrivalDateTime:   arrival,
		Price:             decimal.RequireFromString(price),
		AvailableSeats:    available,
		TotalSeats:        available + 10,
		Operator:          "Test Operator",
		Duration:          models.ComputeDuration(departure, arrival),
	}
	require.NoError(t, db.Create(&option).Error)
	return option
}

func TestSearchExcludesDepartedAndSoldOut(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	future := time.Now().Add(48 * time.Hour)
	bookable := seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "100.00", future, 5)
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "100.00", time.Now().Add(-time.Hour), 5)
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "100.00", future, 0)

	result, err := svc.Search(SearchFilters{}, 1)
	require.NoError(t, err)
	require.Len(t, result.Options, 1)
	assert.Equal(t, bookable.TravelID, result.Options[0].TravelID)
	assert.Equal(t, int64(1), result.TotalCount)
}

func TestSearchFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	near := time.Now().Add(24 * time.Hour)
	far := time.Now().Add(10 * 24 * time.Hour)
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "500.00", near, 5)
	seedCatalogOption(t, db, models.TravelTypeTrain, "New Delhi", "Chennai", "150.00", near, 5)
	seedCatalogOption(t, db, models.TravelTypeBus, "Pune", "Goa", "80.00", far, 5)

	byType, err := svc.Search(SearchFilters{Type: models.TravelTypeTrain}, 1)
	require.NoError(t, err)
	require.Len(t, byType.Options, 1)
	assert.Equal(t, models.TravelTypeTrain, byType.Options[0].Type)

	// Substring, case-insensitive.
	bySource, err := svc.Search(SearchFilters{Source: "delhi"}, 1)
	require.NoError(t, err)
	assert.Len(t, bySource.Options, 2)

	byDest, err := svc.Search(SearchFilters{Destination: "goa"}, 1)
	require.NoError(t, err)
	require.Len(t, byDest.Options, 1)
	assert.Equal(t, "Goa", byDest.Options[0].Destination)

	maxPrice := decimal.RequireFromString("200.00")
	cheap, err := svc.Search(SearchFilters{MaxPrice: &maxPrice}, 1)
	require.NoError(t, err)
	assert.Len(t, cheap.Options, 2)

	from := time.Now().Add(5 * 24 * time.Hour)
	upcoming, err := svc.Search(SearchFilters{DateFrom: &from}, 1)
	require.NoError(t, err)
	require.Len(t, upcoming.Options, 1)
	assert.Equal(t, "Pune", upcoming.Options[0].Source)

	to := time.Now().Add(2 * 24 * time.Hour)
	soon, err := svc.Search(SearchFilters{DateTo: &to}, 1)
	require.NoError(t, err)
	assert.Len(t, soon.Options, 2)
}

func TestSearchSortOrders(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "300.00", time.Now().Add(72*time.Hour), 5)
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "100.00", time.Now().Add(96*time.Hour), 5)
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "200.00", time.Now().Add(24*time.Hour), 5)

	priceLow, err := svc.Search(SearchFilters{SortBy: "price_low"}, 1)
	require.NoError(t, err)
	require.Len(t, priceLow.Options, 3)
	assert.True(t, priceLow.Options[0].Price.LessThanOrEqual(priceLow.Options[1].Price))
	assert.True(t, priceLow.Options[1].Price.LessThanOrEqual(priceLow.Options[2].Price))

	priceHigh, err := svc.Search(SearchFilters{SortBy: "price_high"}, 1)
	require.NoError(t, err)
	require.Len(t, priceHigh.Options, 3)
	assert.True(t, priceHigh.Options[0].Price.GreaterThanOrEqual(priceHigh.Options[1].Price))

	departure, err := svc.Search(SearchFilters{SortBy: "departure"}, 1)
	require.NoError(t, err)
	require.Len(t, departure.Options, 3)
	assert.True(t, !departure.Options[1].DepartureDateTime.Before(departure.Options[0].DepartureDateTime))
	assert.True(t, !departure.Options[2].DepartureDateTime.Before(departure.Options[1].DepartureDateTime))
}

func TestSearchPaginatesAtNinePerPage(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 12; i++ {
		seedCatalogOption(t, db, models.TravelTypeBus, "Pune", "Goa", "80.00",
			time.Now().Add(time.Duration(24+i)*time.Hour), 5)
	}

	page1, err := svc.Search(SearchFilters{}, 1)
	require.NoError(t, err)
	assert.Len(t, page1.Options, CatalogPageSize)
	assert.Equal(t, int64(12), page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)

	page2, err := svc.Search(SearchFilters{}, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Options, 3)

	page3, err := svc.Search(SearchFilters{}, 3)
	require.NoError(t, err)
	assert.Empty(t, page3.Options)
}

func TestFeaturedListsUpcomingBookable(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 8; i++ {
		seedCatalogOption(t, db, models.TravelTypeTrain, "Delhi", "Chennai", "120.00",
			time.Now().Add(time.Duration(24+i)*time.Hour), 5)
	}
	seedCatalogOption(t, db, models.TravelTypeTrain, "Delhi", "Chennai", "120.00", time.Now().Add(-24*time.Hour), 5)

	featured, err := svc.Featured(6)
	require.NoError(t, err)
	assert.Len(t, featured, 6)
	for _, option := range featured {
		assert.True(t, option.DepartureDateTime.After(time.Now().Add(-time.Minute)))
		assert.Greater(t, option.AvailableSeats, 0)
	}
}

func TestGetTravelOptionAndSimilar(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	target := seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "100.00", time.Now().Add(24*time.Hour), 5)
	for i := 0; i < 4; i++ {
		seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Mumbai", "110.00",
			time.Now().Add(time.Duration(48+i)*time.Hour), 5)
	}
	seedCatalogOption(t, db, models.TravelTypeFlight, "Delhi", "Kolkata", "100.00", time.Now().Add(24*time.Hour), 5)

	option, err := svc.GetTravelOption(target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.TravelID, option.TravelID)

	similar, err := svc.SimilarOptions(option, 3)
	require.NoError(t, err)
	assert.Len(t, similar, 3)
	for _, s := range similar {
		assert.NotEqual(t, option.ID, s.ID)
		assert.Equal(t, "Delhi", s.Source)
		assert.Equal(t, "Mumbai", s.Destination)
	}

	_, err = svc.GetTravelOption(99999)
	assert.ErrorAs(t, err, &NotFoundError{})
}
