package utils

import (
	"bytes"
	"fmt"
	"strings"

	"voyago/models"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// BuildBookingReceipt renders a one-page PDF confirmation for a booking,
// including a QR code of the booking reference for gate checks.
func BuildBookingReceipt(booking *models.Booking) ([]byte, error) {
	qrPNG, err := qrcode.Encode(booking.BookingID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	option := booking.TravelOption

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Voyago Booking Confirmation")
	pdf.Ln(16)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking Reference: %s", booking.BookingID))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	line := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(45, 7, label)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}

	line("Travel ID", option.TravelID)
	line("Type", option.Type)
	line("Route", fmt.Sprintf("%s to %s", option.Source, option.Destination))
	line("Departure", option.DepartureDateTime.Format("02 Jan 2006 15:04"))
	line("Arrival", option.ArrivalDateTime.Format("02 Jan 2006 15:04"))
	line("Duration", option.Duration)
	line("Operator", option.Operator)
	line("Seats", fmt.Sprintf("%d", booking.NumberOfSeats))
	line("Passengers", strings.Join(booking.PassengerList(), ", "))
	line("Contact", fmt.Sprintf("%s / %s", booking.ContactEmail, booking.ContactPhone))
	line("Status", booking.Status)
	line("Total Price", booking.TotalPrice.StringFixed(2))
	line("Booked On", booking.BookingDate.Format("02 Jan 2006 15:04"))

	pdf.Ln(6)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("booking-qr", 80, pdf.GetY(), 50, 50, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
