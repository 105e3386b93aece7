package domain

import "time"

// BookingDraft is the in-progress booking carried across conversation turns.
// It is the only durable record of a not-yet-committed booking and must be
// cleared on both commit and explicit cancellation.
type BookingDraft struct {
	ServiceID       string `json:"service_id,omitempty"`
	Date            string `json:"booking_date,omitempty"` // YYYY-MM-DD
	Time            string `json:"time,omitempty"`         // HH:MM
	PartySize       *int   `json:"party_size,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (d BookingDraft) IsEmpty() bool {
	return d.ServiceID == "" && d.Date == "" && d.Time == "" &&
		d.PartySize == nil && d.SpecialRequests == ""
}

// ConversationState is the JSON blob persisted per customer.
type ConversationState struct {
	PendingBooking BookingDraft `json:"pending_booking"`
}

type Customer struct {
	ID             string            `json:"id"`
	TelegramID     string            `json:"telegram_id,omitempty"`
	WhatsAppNumber string            `json:"whatsapp_number,omitempty"`
	FullName       string            `json:"full_name,omitempty"`
	PhoneNumber    string            `json:"phone_number,omitempty"`
	State          ConversationState `json:"conversation_state"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ChannelIdentity is how an inbound event identifies the sender.
type ChannelIdentity struct {
	Kind       ChannelKind
	ExternalID string // Telegram chat id or WhatsApp number
	FullName   string
}
