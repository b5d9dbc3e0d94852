package services

import (
	"errors"
	"time"

	"voyago/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogPageSize is the fixed page size for catalog search results.
const CatalogPageSize = 9

// CatalogService serves read-only queries over the travel catalog. It never
// touches the seat counter.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

type SearchFilters struct {
	Type        string
	Source      string
	Destination string
	DateFrom    *time.Time
	DateTo      *time.Time
	MaxPrice    *decimal.Decimal
	SortBy      string // price_low | price_high | departure
}

type SearchResult struct {
	Options    []models.TravelOption
	TotalCount int64
	Page       int
	TotalPages int
}

// Search lists bookable travel options (upcoming, seats left) matching the
// filters, sorted and paginated at CatalogPageSize per page. Pages are
// 1-based; out-of-range pages return an empty slice.
func (s *CatalogService) Search(filters SearchFilters, page int) (*SearchResult, error) {
	query := s.DB.Model(&models.TravelOption{}).
		Where("departure_date_time >= ?", time.Now()).
		Where("available_seats > 0")

	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Source != "" {
		query = query.Where("LOWER(source) LIKE LOWER(?)", "%"+filters.Source+"%")
	}
	if filters.Destination != "" {
		query = query.Where("LOWER(destination) LIKE LOWER(?)", "%"+filters.Destination+"%")
	}
	if filters.DateFrom != nil {
		query = query.Where("departure_date_time >= ?", filters.DateFrom)
	}
	if filters.DateTo != nil {
		// inclusive: anything departing before the end of that day
		query = query.Where("departure_date_time < ?", filters.DateTo.AddDate(0, 0, 1))
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", filters.MaxPrice)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	switch filters.SortBy {
	case "price_low":
		query = query.Order("price asc")
	case "price_high":
		query = query.Order("price desc")
	default:
		query = query.Order("departure_date_time asc")
	}

	if page < 1 {
		page = 1
	}
	totalPages := int((total + CatalogPageSize - 1) / CatalogPageSize)

	var options []models.TravelOption
	err := query.Offset((page - 1) * CatalogPageSize).Limit(CatalogPageSize).Find(&options).Error
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Options:    options,
		TotalCount: total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Featured returns the next bookable departures for the landing page.
func (s *CatalogService) Featured(limit int) ([]models.TravelOption, error) {
	var options []models.TravelOption
	err := s.DB.Where("departure_date_time >= ?", time.Now()).
		Where("available_seats > 0").
		Order("departure_date_time asc").
		Limit(limit).
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

// GetTravelOption fetches one travel option by primary key.
func (s *CatalogService) GetTravelOption(id uint) (*models.TravelOption, error) {
	var option models.TravelOption
	if err := s.DB.First(&option, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "travel option", Err: err}
		}
		return nil, err
	}
	return &option, nil
}

// SimilarOptions lists other upcoming options on the same route.
func (s *CatalogService) SimilarOptions(option *models.TravelOption, limit int) ([]models.TravelOption, error) {
	var options []models.TravelOption
	err := s.DB.Where("source = ? AND destination = ?", option.Source, option.Destination).
		Where("departure_date_time >= ?", time.Now()).
		Where("id <> ?", option.ID).
		Order("departure_date_time asc").
		Limit(limit).
		Find(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}
