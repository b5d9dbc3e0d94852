package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"voyago/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxBookingIDAttempts bounds the uniqueness-retry loop for generated booking
// references. With 36^8 possible references a second attempt is already rare.
const maxBookingIDAttempts = 5

// BookingService owns the booking lifecycle and is the only writer of
// TravelOption.AvailableSeats. Every mutation runs as one transaction, and the
// seat counter is only ever changed through conditional updates so that
// concurrent requests cannot over-book.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	TravelOptionID uint     `json:"travel_option_id"`
	NumberOfSeats  int      `json:"number_of_seats"`
	PassengerNames []string `json:"passenger_names"`
	ContactEmail   string   `json:"contact_email"`
	ContactPhone   string   `json:"contact_phone"`
}

func (in *CreateBookingInput) validate() error {
	if in.NumberOfSeats < 1 {
		return ValidationError{Field: "number_of_seats", Msg: "must be at least 1"}
	}
	names := make([]string, 0, len(in.PassengerNames))
	for _, n := range in.PassengerNames {
		if name := strings.TrimSpace(n); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ValidationError{Field: "passenger_names", Msg: "at least one passenger name is required"}
	}
	in.PassengerNames = names
	if strings.TrimSpace(in.ContactEmail) == "" {
		return ValidationError{Field: "contact_email", Msg: "is required"}
	}
	if len(strings.TrimSpace(in.ContactPhone)) < 10 {
		return ValidationError{Field: "contact_phone", Msg: "please enter a valid phone number"}
	}
	return nil
}

// CreateBooking reserves seats on a travel option for the given user. The
// insert of the CONFIRMED booking and the seat decrement commit together or
// not at all. The decrement is guarded by "available_seats >= ?" in the UPDATE
// itself, so a request that loses a race with a concurrent booking fails with
// ConflictError instead of driving the counter negative.
func (s *BookingService) CreateBooking(userID uint, in CreateBookingInput) (*models.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var option models.TravelOption
	if err := tx.First(&option, in.TravelOptionID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "travel option", Err: err}
		}
		return nil, err
	}

	now := time.Now()
	if !option.DepartureDateTime.After(now) {
		tx.Rollback()
		return nil, ConflictError{Msg: "travel option has already departed"}
	}
	if option.AvailableSeats < in.NumberOfSeats {
		tx.Rollback()
		return nil, ConflictError{Msg: fmt.Sprintf("only %d seats available", option.AvailableSeats)}
	}

	// Conditional decrement: the WHERE clause re-checks availability in the
	// same statement that mutates it, so two racing bookings cannot both win
	// the last seats.
	res := tx.Model(&models.TravelOption{}).
		Where("id = ? AND available_seats >= ?", option.ID, in.NumberOfSeats).
		UpdateColumn("available_seats", gorm.Expr("available_seats - ?", in.NumberOfSeats))
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ConflictError{Msg: "requested seats are no longer available"}
	}

	bookingRef, err := s.uniqueBookingID(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	booking := models.Booking{
		BookingID:      bookingRef,
		UserID:         userID,
		TravelOptionID: option.ID,
		NumberOfSeats:  in.NumberOfSeats,
		TotalPrice:     option.Price.Mul(decimal.NewFromInt(int64(in.NumberOfSeats))),
		Status:         models.BookingStatusConfirmed,
		PassengerNames: strings.Join(in.PassengerNames, ", "),
		ContactEmail:   strings.TrimSpace(in.ContactEmail),
		ContactPhone:   strings.TrimSpace(in.ContactPhone),
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	option.AvailableSeats -= in.NumberOfSeats
	booking.TravelOption = option
	return &booking, nil
}

// CancelBooking releases the seats held by a CONFIRMED booking back to its
// travel option and marks the booking CANCELLED. The status flip is
// conditional on the row still being CONFIRMED, so a double cancellation
// restores seats exactly once.
func (s *BookingService) CancelBooking(userID uint, bookingRef string) error {
	tx := s.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var booking models.Booking
	err := tx.Preload("TravelOption").
		Where("booking_id = ? AND user_id = ?", bookingRef, userID).
		First(&booking).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFoundError{Resource: "booking", Err: err}
		}
		return err
	}

	now := time.Now()
	if booking.Status != models.BookingStatusConfirmed {
		tx.Rollback()
		return ConflictError{Msg: "booking is not confirmed"}
	}
	if !booking.TravelOption.DepartureDateTime.After(now) {
		tx.Rollback()
		return ConflictError{Msg: "travel option has already departed"}
	}

	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCancelled)
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ConflictError{Msg: "booking has already been cancelled"}
	}

	// Seat restore stays within total_seats; anything else means the ledger
	// and the counter disagree and the transaction must not commit.
	res = tx.Model(&models.TravelOption{}).
		Where("id = ? AND available_seats + ? <= total_seats", booking.TravelOptionID, booking.NumberOfSeats).
		UpdateColumn("available_seats", gorm.Expr("available_seats + ?", booking.NumberOfSeats))
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("seat restore for booking %s would exceed capacity", bookingRef)
	}

	return tx.Commit().Error
}

// GetBooking fetches a single booking owned by the user.
func (s *BookingService) GetBooking(userID uint, bookingRef string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("TravelOption").
		Where("booking_id = ? AND user_id = ?", bookingRef, userID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError{Resource: "booking", Err: err}
		}
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns the user's bookings, newest first, optionally filtered
// by status.
func (s *BookingService) ListBookings(userID uint, status string) ([]models.Booking, error) {
	query := s.DB.Preload("TravelOption").
		Where("user_id = ?", userID).
		Order("booking_date desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) uniqueBookingID(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxBookingIDAttempts; attempt++ {
		ref, err := GenerateBookingID()
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&models.Booking{}).Where("booking_id = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique booking id after %d attempts", maxBookingIDAttempts)
}
