package domain

type ActionKind string

const (
	ActionShowSlots      ActionKind = "SHOW_SLOTS"
	ActionShowBookings   ActionKind = "SHOW_BOOKINGS"
	ActionManageBooking  ActionKind = "MANAGE_BOOKING"
	ActionHumanHandoff   ActionKind = "HUMAN_HANDOFF"
	ActionConfirmBooking ActionKind = "CONFIRM_BOOKING"
)

// Action is the structured intent decoded once at the AI boundary.
// Downstream code never inspects untyped payload maps.
type Action struct {
	Kind      ActionKind
	ServiceID string
	Date      string // YYYY-MM-DD
	PartySize *int
	BookingID string
}

// AIResult is the normalized AI collaborator reply.
type AIResult struct {
	ReplyText string
	Action    *Action
}
