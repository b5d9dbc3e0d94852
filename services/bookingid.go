package services

import (
	"crypto/rand"
	"fmt"
)

const (
	bookingIDPrefix  = "BK"
	bookingIDLength  = 8
	bookingIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateBookingID returns a booking reference of the form BK + 8 random
// uppercase alphanumerics, e.g. "BK7Q2ZR9XA". Randomness comes from
// crypto/rand; uniqueness is still enforced by the caller against the
// bookings table (see CreateBooking's retry loop).
func GenerateBookingID() (string, error) {
	buf := make([]byte, bookingIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate booking id: %w", err)
	}
	for i, b := range buf {
		buf[i] = bookingIDCharset[int(b)%len(bookingIDCharset)]
	}
	return bookingIDPrefix + string(buf), nil
}
