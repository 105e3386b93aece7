package dispatch

import (
	"fmt"
	"strings"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

var weekdayNames = []struct{ key, name string }{
	{"mon", "Monday"}, {"tue", "Tuesday"}, {"wed", "Wednesday"},
	{"thu", "Thursday"}, {"fri", "Friday"}, {"sat", "Saturday"}, {"sun", "Sunday"},
}

// buildSystemPrompt assembles the receptionist persona: business facts,
// bookable services, the in-progress draft, and the action-tag protocol the
// reply parser understands.
func buildSystemPrompt(business *domain.Business, services []*domain.Service, draft domain.BookingDraft, today string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the friendly booking receptionist for %s", business.Name)
	if business.Location != "" {
		fmt.Fprintf(&b, " located at %s", business.Location)
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Today's date is %s. Timezone: %s.\n\n", today, business.Timezone)

	b.WriteString("Opening hours:\n")
	for _, day := range weekdayNames {
		open, closeAt, ok := business.WorkingHours.HoursFor(day.key)
		if !ok {
			fmt.Fprintf(&b, "- %s: closed\n", day.name)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s to %s\n", day.name, open, closeAt)
	}

	if business.FAQ != "" {
		b.WriteString("\nGood to know:\n")
		b.WriteString(business.FAQ)
		b.WriteString("\n")
	}

	if len(services) > 0 {
		b.WriteString("\nBookable options:\n")
		for _, s := range services {
			fmt.Fprintf(&b, "- %s (id: %s, %d min", s.Name, s.ID, s.DurationMinutes)
			if s.Price != nil {
				fmt.Fprintf(&b, ", %.2f", *s.Price)
			}
			if s.Capacity != nil {
				fmt.Fprintf(&b, ", up to %d people", *s.Capacity)
			}
			b.WriteString(")\n")
		}
	}

	if !draft.IsEmpty() {
		b.WriteString("\nThe customer has a booking in progress:\n")
		if draft.ServiceID != "" {
			fmt.Fprintf(&b, "- service id: %s\n", draft.ServiceID)
		}
		if draft.Date != "" {
			fmt.Fprintf(&b, "- date: %s\n", draft.Date)
		}
		if draft.Time != "" {
			fmt.Fprintf(&b, "- time: %s\n", draft.Time)
		}
		if draft.PartySize != nil {
			fmt.Fprintf(&b, "- party size: %d\n", *draft.PartySize)
		}
	}

	b.WriteString(`
When the customer wants to act, append exactly one action tag after your reply:
ACTION: SHOW_SLOTS
DATA: {"service_id": "...", "date": "YYYY-MM-DD", "party_size": 2}
ACTION: SHOW_BOOKINGS
ACTION: MANAGE_BOOKING
DATA: {"booking_id": "..."}
ACTION: CONFIRM_BOOKING
DATA: {"service_id": "...", "date": "YYYY-MM-DD", "party_size": 2}
ACTION: HUMAN_HANDOFF

Rules:
- Dates are always YYYY-MM-DD. Resolve words like "tomorrow" using today's date.
- Use SHOW_SLOTS once you know the date; never invent available times yourself.
- Use HUMAN_HANDOFF when the customer asks for a person or you cannot help.
- Keep replies short and warm; no markdown.`)

	return b.String()
}
