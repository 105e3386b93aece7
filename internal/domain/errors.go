package domain

import "errors"

var (
	ErrBusinessNotFound = errors.New("business not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	// ErrSlotTaken means the requested interval overlaps a confirmed booking.
	ErrSlotTaken = errors.New("slot no longer available")
	// ErrReferenceTaken is the rare reference collision; callers retry with a
	// fresh suffix.
	ErrReferenceTaken   = errors.New("booking reference already exists")
	ErrBookingCancelled = errors.New("booking is cancelled")
)

var (
	ErrValidation = errors.New("validation error")
)
