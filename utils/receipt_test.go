package utils

import (
	"bytes"
	"testing"
	"time"

	"voyago/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingReceipt(t *testing.T) {
	departure := time.Date(2026, 10, 12, 8, 30, 0, 0, time.UTC)
	booking := &models.Booking{
		BookingID:      "BKTEST1234",
		NumberOfSeats:  2,
		TotalPrice:     decimal.RequireFromString("5400.00"),
		Status:         models.BookingStatusConfirmed,
		PassengerNames: "Asha Rao, Vikram Rao",
		ContactEmail:   "asha@example.com",
		ContactPhone:   "9876543210",
		BookingDate:    time.Now(),
		TravelOption: models.TravelOption{
			TravelID:          "FL00042",
			Type:              models.TravelTypeFlight,
			Source:            "Delhi",
			Destination:       "Mumbai",
			DepartureDateTime: departure,
			ArrivalDateTime:   departure.Add(2 * time.Hour),
			Duration:          "2h 0m",
			Operator:          "IndiGo",
		},
	}

	pdfBytes, err := BuildBookingReceipt(booking)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "output should be a PDF document")
	assert.Greater(t, len(pdfBytes), 1000)
}
