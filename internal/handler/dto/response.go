package dto

import (
	"time"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SlotResponse struct {
	Label string `json:"label"`
	Time  string `json:"time"`
}

func ToSlotResponse(s domain.Slot) SlotResponse {
	return SlotResponse{Label: s.Label, Time: s.Time}
}

type BookingResponse struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"business_id"`
	CustomerID      string    `json:"customer_id"`
	ServiceID       string    `json:"service_id,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       *int      `json:"party_size,omitempty"`
	Status          string    `json:"status"`
	Reference       string    `json:"booking_reference"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		BusinessID:      b.BusinessID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		Date:            b.BookingDate,
		Time:            b.BookingTime,
		PartySize:       b.PartySize,
		Status:          string(b.Status),
		Reference:       b.Reference,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
	}
}
