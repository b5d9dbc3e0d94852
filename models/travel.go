package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TravelTypeFlight = "FLIGHT"
	TravelTypeTrain  = "TRAIN"
	TravelTypeBus    = "BUS"
)

// TravelTypes lists the valid values of TravelOption.Type.
var TravelTypes = []string{TravelTypeFlight, TravelTypeTrain, TravelTypeBus}

type TravelOption struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	TravelID          string          `gorm:"uniqueIndex;size:20;not null" json:"travel_id"`
	Type              string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Source            string          `gorm:"size:100;not null" json:"source"`
	Destination       string          `gorm:"size:100;not null" json:"destination"`
	DepartureDateTime time.Time       `gorm:"not null;index" json:"departure_date_time"`
	ArrivalDateTime   time.Time       `gorm:"not null" json:"arrival_date_time"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	AvailableSeats    int             `gorm:"not null" json:"available_seats"`
	TotalSeats        int             `gorm:"not null" json:"total_seats"`
	Operator          string          `gorm:"size:100;default:'Default Operator'" json:"operator"`
	Duration          string          `gorm:"size:20" json:"duration"` // fixed at creation, e.g. "5h 30m"
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:TravelOptionID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsAvailable reports whether the option can still be booked.
func (t *TravelOption) IsAvailable(now time.Time) bool {
	return t.AvailableSeats > 0 && t.DepartureDateTime.After(now)
}

// ComputeDuration renders the departure→arrival span as "Xh Ym".
func ComputeDuration(departure, arrival time.Time) string {
	delta := arrival.Sub(departure)
	if delta < 0 {
		delta = 0
	}
	hours := int(delta.Hours())
	minutes := int(delta.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// ValidTravelType reports whether t is one of FLIGHT, TRAIN or BUS.
func ValidTravelType(t string) bool {
	for _, v := range TravelTypes {
		if v == t {
			return true
		}
	}
	return false
}
