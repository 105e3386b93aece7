package conversation

import (
	"fmt"
	"strings"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

func askDateText() string {
	return "What date would you like to book? (e.g. 2025-06-14)"
}

func badDateText(date string) string {
	return fmt.Sprintf("I couldn't read %q as a date. Please send it as YYYY-MM-DD.", date)
}

func slotPromptText(date string) string {
	return fmt.Sprintf("Here are the available times for %s. Pick one:", date)
}

func noSlotsText(date string) string {
	return fmt.Sprintf("Sorry, we're fully booked on %s.", date)
}

func pickTimeText() string {
	return "Almost there! Pick a time from the list first."
}

func confirmSummaryText(businessName, serviceName string, d domain.BookingDraft) string {
	var b strings.Builder
	b.WriteString("Please confirm your booking:\n")
	fmt.Fprintf(&b, "🏠 %s\n", businessName)
	if serviceName != "" {
		fmt.Fprintf(&b, "🍽 %s\n", serviceName)
	}
	fmt.Fprintf(&b, "📅 %s at %s\n", d.Date, d.Time)
	if d.PartySize != nil {
		fmt.Fprintf(&b, "👥 %d people\n", *d.PartySize)
	}
	if d.SpecialRequests != "" {
		fmt.Fprintf(&b, "📝 %s\n", d.SpecialRequests)
	}
	return b.String()
}

func bookingConfirmedText(b *domain.Booking, businessName string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Booking confirmed at %s!\n", businessName)
	fmt.Fprintf(&sb, "📅 %s at %s\n", b.BookingDate, b.BookingTime)
	if b.PartySize != nil {
		fmt.Fprintf(&sb, "👥 %d people\n", *b.PartySize)
	}
	fmt.Fprintf(&sb, "🔖 Reference: %s\n", b.Reference)
	sb.WriteString("We'll remind you before your visit. See you soon!")
	return sb.String()
}

func slotTakenText() string {
	return "Sorry, that time was just taken. Please pick another time."
}

func draftCancelledText() string {
	return "No problem, I've cancelled that. Let me know if you'd like to book another time."
}

func bookingListText(bookings []*domain.Booking) string {
	var b strings.Builder
	b.WriteString("Your upcoming bookings:\n")
	for _, bk := range bookings {
		fmt.Fprintf(&b, "• %s at %s (%s)\n", bk.BookingDate, bk.BookingTime, bk.Reference)
	}
	b.WriteString("Tap one to manage it.")
	return b.String()
}

func noBookingsText() string {
	return "You don't have any upcoming bookings."
}

func manageOptionsText(b *domain.Booking) string {
	return fmt.Sprintf("Booking %s on %s at %s. What would you like to do?",
		b.Reference, b.BookingDate, b.BookingTime)
}

func bookingNotFoundText() string {
	return "I couldn't find that booking. It may have been cancelled already."
}

func bookingCancelledText(reference string) string {
	return fmt.Sprintf("❌ Booking %s has been cancelled. Hope to see you another time!", reference)
}

func alreadyCancelledText() string {
	return "That booking was already cancelled."
}

func reschedulePromptText() string {
	return "Sure! Tell me the new date and time and I'll check availability."
}

func handoffCustomerText(businessName string) string {
	return fmt.Sprintf("I've let the %s team know. Someone will reply here shortly.", businessName)
}

func handoffGroupText(customerName string) string {
	if customerName == "" {
		customerName = "A customer"
	}
	return fmt.Sprintf("🆘 %s asked for a human. Their next messages will be forwarded here.", customerName)
}

func somethingWrongText() string {
	return "Sorry, something went wrong on our side. Please try again in a moment."
}
