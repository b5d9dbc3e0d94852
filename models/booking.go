package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BookingID string `gorm:"uniqueIndex;size:20;not null" json:"booking_id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	TravelOptionID uint         `gorm:"index;not null" json:"travel_option_id"`
	TravelOption   TravelOption `gorm:"foreignKey:TravelOptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"travel_option"`

	NumberOfSeats  int             `gorm:"not null" json:"number_of_seats"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"` // frozen at booking time
	Status         string          `gorm:"type:varchar(10);default:'PENDING';index" json:"status"`
	PassengerNames string          `gorm:"type:text;not null" json:"passenger_names"` // comma-separated
	ContactEmail   string          `gorm:"not null" json:"contact_email"`
	ContactPhone   string          `gorm:"size:15;not null" json:"contact_phone"`
	BookingDate    time.Time       `gorm:"autoCreateTime;index" json:"booking_date"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PassengerList splits the stored comma-separated names, dropping blanks.
func (b *Booking) PassengerList() []string {
	parts := strings.Split(b.PassengerNames, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// IsCancellable reports whether the booking still holds seats that can be
// released: it must be CONFIRMED and its travel option must not have departed.
func (b *Booking) IsCancellable(now time.Time) bool {
	return b.Status == BookingStatusConfirmed && b.TravelOption.DepartureDateTime.After(now)
}
