package domain

// ReminderPayload is everything a fired reminder needs to render and send
// its message without touching the database.
type ReminderPayload struct {
	BookingID    string
	Channel      ChannelKind
	Recipient    string // channel recipient id
	BusinessName string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	PartySize    string // pre-rendered, may be empty
	Reference    string
}
