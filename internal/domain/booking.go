package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

type Booking struct {
	ID               string        `json:"id"`
	BusinessID       string        `json:"business_id"`
	CustomerID       string        `json:"customer_id"`
	ServiceID        string        `json:"service_id"`
	BookingDate      string        `json:"booking_date"` // YYYY-MM-DD
	BookingTime      string        `json:"booking_time"` // HH:MM
	PartySize        *int          `json:"party_size,omitempty"`
	Status           BookingStatus `json:"status"`
	Reference        string        `json:"booking_reference"`
	SpecialRequests  string        `json:"special_requests,omitempty"`
	Reminder24hJobID *string       `json:"reminder_24h_job_id,omitempty"`
	Reminder1hJobID  *string       `json:"reminder_1h_job_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	BusinessID      string
	CustomerID      string
	ServiceID       string
	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	PartySize       *int
	SpecialRequests string
}

// BookedSlot is an occupied interval on a business day, carrying the
// duration of the booked service.
type BookedSlot struct {
	Time            string // HH:MM
	DurationMinutes int
}

// Slot is one offered start time for a day.
type Slot struct {
	Label string `json:"label"` // e.g. "7:00 PM"
	Time  string `json:"time"`  // HH:MM
}
