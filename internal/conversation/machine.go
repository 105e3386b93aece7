// Package conversation advances the per-customer booking draft in response
// to decoded AI actions and inline button callbacks. The draft handed back
// from every call is the only durable record of an in-progress booking; the
// caller persists it after each turn.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/timeslot"
)

type State string

const (
	StateIdle                 State = "idle"
	StateCollectingSlot       State = "collecting_slot"
	StateAwaitingConfirmation State = "awaiting_confirmation"
)

// StateOf derives the machine state from the draft shape; no separate state
// field is stored, so draft and state can never disagree.
func StateOf(d domain.BookingDraft) State {
	switch {
	case d.Date != "" && d.Time != "":
		return StateAwaitingConfirmation
	case d.Date != "":
		return StateCollectingSlot
	default:
		return StateIdle
	}
}

// Reservations is the booking surface the machine drives.
type Reservations interface {
	AvailableSlots(ctx context.Context, businessID, serviceID, date string) ([]domain.Slot, error)
	CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (bool, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListUpcoming(ctx context.Context, customerID, businessID string) ([]*domain.Booking, error)
	GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error)
}

// Support opens human-handoff sessions.
type Support interface {
	Initiate(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error)
}

type Machine struct {
	reservations Reservations
	support      Support
	groups       ports.Channel // staff-group forwards always go over Telegram
	logger       logger.Logger
}

func NewMachine(reservations Reservations, support Support, groups ports.Channel, logger logger.Logger) *Machine {
	return &Machine{
		reservations: reservations,
		support:      support,
		groups:       groups,
		logger:       logger,
	}
}

// HandleAction applies a decoded AI action and returns the next draft.
func (m *Machine) HandleAction(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, act *domain.Action, draft domain.BookingDraft) (domain.BookingDraft, error) {
	if act == nil {
		return draft, nil
	}

	recipient := recipientFor(business, customer)

	switch act.Kind {
	case domain.ActionShowSlots:
		return m.showSlots(ctx, ch, business, recipient, mergeAction(draft, act))
	case domain.ActionConfirmBooking:
		draft = mergeAction(draft, act)
		if StateOf(draft) == StateAwaitingConfirmation {
			return draft, m.sendConfirmPrompt(ctx, ch, business, recipient, draft)
		}
		return m.showSlots(ctx, ch, business, recipient, draft)
	case domain.ActionShowBookings:
		return draft, m.showBookings(ctx, ch, customer, business, recipient)
	case domain.ActionManageBooking:
		return draft, m.manageBooking(ctx, ch, recipient, act.BookingID)
	case domain.ActionHumanHandoff:
		return draft, m.humanHandoff(ctx, ch, business, customer, recipient)
	default:
		return draft, nil
	}
}

// HandleCallback applies an inline-button press. Unrecognized data while the
// draft is incomplete reprompts without a transition.
func (m *Machine) HandleCallback(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, data string, draft domain.BookingDraft) (domain.BookingDraft, error) {
	recipient := recipientFor(business, customer)

	switch {
	case data == "confirm_booking":
		return m.confirmBooking(ctx, ch, business, customer, recipient, draft)

	case data == "cancel_booking":
		// Abandon from any state; the cleared draft must be persisted so a
		// stale one cannot leak into later turns.
		return domain.BookingDraft{}, ch.SendMessage(ctx, recipient, draftCancelledText())

	case data == "different_date":
		draft.Date = ""
		draft.Time = ""
		return draft, ch.SendMessage(ctx, recipient, askDateText())

	case strings.HasPrefix(data, "manage_cancel_"):
		return draft, m.cancelExisting(ctx, ch, recipient, strings.TrimPrefix(data, "manage_cancel_"))

	case strings.HasPrefix(data, "manage_reschedule_"):
		return draft, ch.SendMessage(ctx, recipient, reschedulePromptText())

	case strings.HasPrefix(data, "manage_booking_"):
		return draft, m.manageBooking(ctx, ch, recipient, strings.TrimPrefix(data, "manage_booking_"))
	}

	// Anything else should be a slot time picked from the list.
	if _, err := timeslot.ParseClock(data); err == nil {
		if draft.Date == "" {
			return draft, ch.SendMessage(ctx, recipient, askDateText())
		}
		draft.Time = data
		return draft, m.sendConfirmPrompt(ctx, ch, business, recipient, draft)
	}

	m.logger.Warn("unrecognized callback",
		logger.String("data", data),
		logger.String("customer_id", customer.ID),
	)
	return draft, ch.SendMessage(ctx, recipient, pickTimeText())
}

func (m *Machine) showSlots(ctx context.Context, ch ports.Channel, business *domain.Business, recipient string, draft domain.BookingDraft) (domain.BookingDraft, error) {
	draft.Time = ""
	if draft.Date == "" {
		return draft, ch.SendMessage(ctx, recipient, askDateText())
	}

	slots, err := m.reservations.AvailableSlots(ctx, business.ID, draft.ServiceID, draft.Date)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			bad := draft.Date
			draft.Date = ""
			return draft, ch.SendMessage(ctx, recipient, badDateText(bad))
		}
		return draft, fmt.Errorf("available slots: %w", err)
	}

	if len(slots) == 0 {
		return draft, ch.SendButtons(ctx, recipient, noSlotsText(draft.Date), []ports.Button{
			{Label: "Try another date", Action: "different_date"},
		})
	}

	items := make([]ports.Button, 0, len(slots))
	for _, s := range slots {
		items = append(items, ports.Button{Label: s.Label, Action: s.Time})
	}
	return draft, ch.SendList(ctx, recipient, slotPromptText(draft.Date), items)
}

func (m *Machine) sendConfirmPrompt(ctx context.Context, ch ports.Channel, business *domain.Business, recipient string, draft domain.BookingDraft) error {
	serviceName := ""
	if draft.ServiceID != "" {
		if svc, err := m.reservations.GetService(ctx, business.ID, draft.ServiceID); err == nil {
			serviceName = svc.Name
		}
	}
	return ch.SendButtons(ctx, recipient, confirmSummaryText(business.Name, serviceName, draft), []ports.Button{
		{Label: "✅ Confirm", Action: "confirm_booking"},
		{Label: "❌ Cancel", Action: "cancel_booking"},
	})
}

func (m *Machine) confirmBooking(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, recipient string, draft domain.BookingDraft) (domain.BookingDraft, error) {
	if StateOf(draft) != StateAwaitingConfirmation {
		return draft, ch.SendMessage(ctx, recipient, pickTimeText())
	}

	booking, err := m.reservations.CreateBooking(ctx, domain.CreateBookingInput{
		BusinessID:      business.ID,
		CustomerID:      customer.ID,
		ServiceID:       draft.ServiceID,
		Date:            draft.Date,
		Time:            draft.Time,
		PartySize:       draft.PartySize,
		SpecialRequests: draft.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			draft.Time = ""
			return draft, ch.SendMessage(ctx, recipient, slotTakenText())
		}
		if sendErr := ch.SendMessage(ctx, recipient, somethingWrongText()); sendErr != nil {
			m.logger.Error("failed to send error reply",
				logger.String("error", sendErr.Error()),
			)
		}
		return draft, fmt.Errorf("create booking: %w", err)
	}

	return domain.BookingDraft{}, ch.SendMessage(ctx, recipient, bookingConfirmedText(booking, business.Name))
}

func (m *Machine) showBookings(ctx context.Context, ch ports.Channel, customer *domain.Customer, business *domain.Business, recipient string) error {
	bookings, err := m.reservations.ListUpcoming(ctx, customer.ID, business.ID)
	if err != nil {
		return fmt.Errorf("list upcoming: %w", err)
	}
	if len(bookings) == 0 {
		return ch.SendMessage(ctx, recipient, noBookingsText())
	}

	items := make([]ports.Button, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, ports.Button{
			Label:  fmt.Sprintf("%s %s (%s)", b.BookingDate, b.BookingTime, b.Reference),
			Action: "manage_booking_" + b.ID,
		})
	}
	return ch.SendList(ctx, recipient, bookingListText(bookings), items)
}

func (m *Machine) manageBooking(ctx context.Context, ch ports.Channel, recipient, bookingID string) error {
	booking, err := m.reservations.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return ch.SendMessage(ctx, recipient, bookingNotFoundText())
		}
		return fmt.Errorf("get booking: %w", err)
	}
	return ch.SendButtons(ctx, recipient, manageOptionsText(booking), []ports.Button{
		{Label: "❌ Cancel booking", Action: "manage_cancel_" + booking.ID},
		{Label: "📅 Reschedule", Action: "manage_reschedule_" + booking.ID},
	})
}

func (m *Machine) cancelExisting(ctx context.Context, ch ports.Channel, recipient, bookingID string) error {
	booking, err := m.reservations.GetBooking(ctx, bookingID)
	if err != nil && !errors.Is(err, domain.ErrBookingNotFound) {
		return fmt.Errorf("get booking: %w", err)
	}

	cancelled, err := m.reservations.CancelBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if !cancelled {
		return ch.SendMessage(ctx, recipient, alreadyCancelledText())
	}

	reference := bookingID
	if booking != nil {
		reference = booking.Reference
	}
	return ch.SendMessage(ctx, recipient, bookingCancelledText(reference))
}

func (m *Machine) humanHandoff(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, recipient string) error {
	if _, err := m.support.Initiate(ctx, customer.ID, business.ID); err != nil {
		return fmt.Errorf("initiate handoff: %w", err)
	}

	if business.TelegramGroupID != "" && m.groups != nil {
		if err := m.groups.ForwardToGroup(ctx, business.TelegramGroupID, handoffGroupText(customer.FullName)); err != nil {
			m.logger.Error("failed to notify group of handoff",
				logger.String("business_id", business.ID),
				logger.String("error", err.Error()),
			)
		}
	}
	return ch.SendMessage(ctx, recipient, handoffCustomerText(business.Name))
}

func mergeAction(draft domain.BookingDraft, act *domain.Action) domain.BookingDraft {
	if act.ServiceID != "" {
		draft.ServiceID = act.ServiceID
	}
	if act.Date != "" {
		draft.Date = act.Date
	}
	if act.PartySize != nil {
		draft.PartySize = act.PartySize
	}
	return draft
}

func recipientFor(business *domain.Business, customer *domain.Customer) string {
	if business.ActiveChannel == domain.ChannelWhatsApp {
		return customer.WhatsAppNumber
	}
	return customer.TelegramID
}
