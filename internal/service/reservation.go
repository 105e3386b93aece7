package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/timeslot"
)

const referenceAttempts = 3

// referenceCharset avoids lookalike characters (0/O, 1/I/L).
const referenceCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

type ReservationService struct {
	bookingRepo  ports.BookingRepo
	businessRepo ports.BusinessRepo
	customerRepo ports.CustomerRepo
	reminders    ports.ReminderScheduler
	channels     map[domain.ChannelKind]ports.Channel
	logger       logger.Logger
	now          func() time.Time
}

func NewReservationService(
	bookingRepo ports.BookingRepo,
	businessRepo ports.BusinessRepo,
	customerRepo ports.CustomerRepo,
	reminders ports.ReminderScheduler,
	channels map[domain.ChannelKind]ports.Channel,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		reminders:    reminders,
		channels:     channels,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock overrides the service clock, for tests.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// AvailableSlots computes the offerable start times for a business day.
// A closed day or a fully booked day yields an empty result, not an error.
func (s *ReservationService) AvailableSlots(ctx context.Context, businessID, serviceID, date string) ([]domain.Slot, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	day, err := timeslot.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrValidation, date)
	}

	open, closeAt, ok := business.WorkingHours.HoursFor(timeslot.WeekdayKey(day))
	if !ok {
		return nil, nil
	}

	duration, err := s.serviceDuration(ctx, businessID, serviceID)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookingRepo.BookedSlots(ctx, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("booked slots: %w", err)
	}

	intervals := make([]timeslot.Interval, 0, len(booked))
	for _, b := range booked {
		start, err := timeslot.ParseClock(b.Time)
		if err != nil {
			s.logger.Warn("skipping booking with bad time",
				logger.String("business_id", businessID),
				logger.String("time", b.Time),
			)
			continue
		}
		intervals = append(intervals, timeslot.Interval{Start: start, End: start + b.DurationMinutes})
	}

	starts := timeslot.Slots(open, closeAt, business.SlotDurationMinutes, duration, intervals)
	slots := make([]domain.Slot, 0, len(starts))
	for _, m := range starts {
		slots = append(slots, domain.Slot{Label: timeslot.Label(m), Time: timeslot.FormatClock(m)})
	}
	return slots, nil
}

// CreateBooking commits a booking. The repository re-checks the slot inside
// its transaction, so two racing requests for the same interval cannot both
// succeed. Reminder scheduling and group notification are best-effort and
// never fail the booking.
func (s *ReservationService) CreateBooking(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	business, err := s.businessRepo.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if _, err = timeslot.ParseDate(input.Date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrValidation, input.Date)
	}
	if _, err = timeslot.ParseClock(input.Time); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", domain.ErrValidation, input.Time)
	}

	duration, err := s.serviceDuration(ctx, input.BusinessID, input.ServiceID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		BusinessID:      input.BusinessID,
		CustomerID:      input.CustomerID,
		ServiceID:       input.ServiceID,
		BookingDate:     input.Date,
		BookingTime:     input.Time,
		PartySize:       input.PartySize,
		Status:          domain.BookingStatusConfirmed,
		SpecialRequests: input.SpecialRequests,
		CreatedAt:       s.now().UTC(),
		UpdatedAt:       s.now().UTC(),
	}

	for attempt := 0; attempt < referenceAttempts; attempt++ {
		booking.Reference = newReference(business.Type.ReferencePrefix(), input.Date)
		err = s.bookingRepo.Create(ctx, booking, duration)
		if !errors.Is(err, domain.ErrReferenceTaken) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("business_id", booking.BusinessID),
		logger.String("reference", booking.Reference),
		logger.String("date", booking.BookingDate),
		logger.String("time", booking.BookingTime),
	)

	s.scheduleReminders(ctx, booking, business, customer)

	go s.notifyGroup(context.WithoutCancel(ctx), booking, business, customer)

	return booking, nil
}

// RescheduleBooking moves a confirmed booking to a new date/time. The new
// slot is re-checked against confirmed overlaps excluding the booking itself.
func (s *ReservationService) RescheduleBooking(ctx context.Context, bookingID, newDate, newTime string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingCancelled
	}
	if booking.Status != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotFound
	}

	if _, err = timeslot.ParseDate(newDate); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrValidation, newDate)
	}
	if _, err = timeslot.ParseClock(newTime); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", domain.ErrValidation, newTime)
	}

	duration, err := s.serviceDuration(ctx, booking.BusinessID, booking.ServiceID)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = newDate
	booking.BookingTime = newTime
	if err = s.bookingRepo.Reschedule(ctx, booking, duration); err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.logger.Info("booking rescheduled",
		logger.String("booking_id", booking.ID),
		logger.String("date", newDate),
		logger.String("time", newTime),
	)

	// Old timers are dropped before new ones are registered, so each window
	// fires at most once per booking.
	s.reminders.Cancel(booking.Reminder24hJobID, booking.Reminder1hJobID)
	booking.Reminder24hJobID = nil
	booking.Reminder1hJobID = nil

	business, err := s.businessRepo.GetByID(ctx, booking.BusinessID)
	if err != nil {
		s.logger.Error("failed to load business for reminders",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}
	customer, err := s.customerRepo.GetByID(ctx, booking.CustomerID)
	if err != nil {
		s.logger.Error("failed to load customer for reminders",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}
	s.scheduleReminders(ctx, booking, business, customer)

	return booking, nil
}

// CancelBooking is idempotent: cancelling a missing or already-cancelled
// booking reports false without error.
func (s *ReservationService) CancelBooking(ctx context.Context, bookingID string) (bool, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return false, nil
	}

	s.reminders.Cancel(booking.Reminder24hJobID, booking.Reminder1hJobID)

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("cancel booking: %w", err)
	}
	if cancelled {
		s.logger.Info("booking cancelled",
			logger.String("booking_id", bookingID),
			logger.String("reference", booking.Reference),
		)
	}
	return cancelled, nil
}

func (s *ReservationService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *ReservationService) GetBookingByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, fmt.Errorf("%w: empty reference", domain.ErrValidation)
	}
	return s.bookingRepo.GetByReference(ctx, reference)
}

func (s *ReservationService) ListUpcoming(ctx context.Context, customerID, businessID string) ([]*domain.Booking, error) {
	today := s.now().Format(time.DateOnly)
	return s.bookingRepo.ListUpcomingByCustomer(ctx, customerID, businessID, today)
}

func (s *ReservationService) ListByBusinessDate(ctx context.Context, businessID, date string) ([]*domain.Booking, error) {
	if _, err := timeslot.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrValidation, date)
	}
	return s.bookingRepo.ListByBusinessDate(ctx, businessID, date)
}

func (s *ReservationService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	return s.businessRepo.GetByID(ctx, businessID)
}

func (s *ReservationService) GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error) {
	return s.businessRepo.GetService(ctx, businessID, serviceID)
}

func (s *ReservationService) ListServices(ctx context.Context, businessID string) ([]*domain.Service, error) {
	return s.businessRepo.ListServices(ctx, businessID)
}

// CompleteFinished flips confirmed bookings whose end time has passed to
// completed. Driven by the housekeeping scheduler.
func (s *ReservationService) CompleteFinished(ctx context.Context) (int64, error) {
	n, err := s.bookingRepo.CompleteFinished(ctx)
	if err != nil {
		return 0, fmt.Errorf("complete finished bookings: %w", err)
	}
	if n > 0 {
		s.logger.Info("bookings completed", logger.Int64("count", n))
	}
	return n, nil
}

// RestoreReminders re-registers reminder timers for every upcoming confirmed
// booking. Called once at startup; in-memory timers do not survive restarts.
func (s *ReservationService) RestoreReminders(ctx context.Context) error {
	today := s.now().Format(time.DateOnly)
	bookings, err := s.bookingRepo.ListUpcomingConfirmed(ctx, today)
	if err != nil {
		return fmt.Errorf("list upcoming bookings: %w", err)
	}

	businesses := make(map[string]*domain.Business)
	restored := 0
	for _, b := range bookings {
		business, ok := businesses[b.BusinessID]
		if !ok {
			business, err = s.businessRepo.GetByID(ctx, b.BusinessID)
			if err != nil {
				s.logger.Error("failed to load business for reminder restore",
					logger.String("booking_id", b.ID),
					logger.String("error", err.Error()),
				)
				continue
			}
			businesses[b.BusinessID] = business
		}
		customer, err := s.customerRepo.GetByID(ctx, b.CustomerID)
		if err != nil {
			s.logger.Error("failed to load customer for reminder restore",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.scheduleReminders(ctx, b, business, customer)
		restored++
	}

	s.logger.Info("reminders restored", logger.Int("bookings", restored))
	return nil
}

// DeliverReminder renders and sends one fired reminder. At-most-once: a send
// failure is logged, not retried.
func (s *ReservationService) DeliverReminder(window string, p domain.ReminderPayload) {
	when := "in 1 hour"
	if window == "24h" {
		when = "tomorrow at " + p.Time
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⏰ Reminder: your booking at %s is %s.\n", p.BusinessName, when)
	fmt.Fprintf(&b, "📅 %s at %s\n", p.Date, p.Time)
	if p.PartySize != "" {
		fmt.Fprintf(&b, "👥 %s\n", p.PartySize)
	}
	fmt.Fprintf(&b, "🔖 Reference: %s", p.Reference)

	ch, ok := s.channels[p.Channel]
	if !ok {
		s.logger.Error("no channel for reminder",
			logger.String("booking_id", p.BookingID),
			logger.String("channel", string(p.Channel)),
		)
		return
	}
	if err := ch.SendMessage(context.Background(), p.Recipient, b.String()); err != nil {
		s.logger.Error("failed to send reminder",
			logger.String("booking_id", p.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) serviceDuration(ctx context.Context, businessID, serviceID string) (int, error) {
	if serviceID == "" {
		return domain.FallbackDurationMinutes, nil
	}
	svc, err := s.businessRepo.GetService(ctx, businessID, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return domain.FallbackDurationMinutes, nil
		}
		return 0, fmt.Errorf("get service: %w", err)
	}
	if svc.DurationMinutes <= 0 {
		return domain.FallbackDurationMinutes, nil
	}
	return svc.DurationMinutes, nil
}

func (s *ReservationService) scheduleReminders(ctx context.Context, b *domain.Booking, business *domain.Business, customer *domain.Customer) {
	recipient := customer.TelegramID
	if business.ActiveChannel == domain.ChannelWhatsApp {
		recipient = customer.WhatsAppNumber
	}
	if recipient == "" {
		s.logger.Warn("no reminder recipient for booking",
			logger.String("booking_id", b.ID),
		)
		return
	}

	partySize := ""
	if b.PartySize != nil {
		partySize = fmt.Sprintf("%d people", *b.PartySize)
	}

	job24h, job1h := s.reminders.Schedule(domain.ReminderPayload{
		BookingID:    b.ID,
		Channel:      business.ActiveChannel,
		Recipient:    recipient,
		BusinessName: business.Name,
		Date:         b.BookingDate,
		Time:         b.BookingTime,
		PartySize:    partySize,
		Reference:    b.Reference,
	})
	b.Reminder24hJobID = job24h
	b.Reminder1hJobID = job1h

	if err := s.bookingRepo.SetReminderJobs(ctx, b.ID, job24h, job1h); err != nil {
		s.logger.Error("failed to persist reminder job ids",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) notifyGroup(ctx context.Context, b *domain.Booking, business *domain.Business, customer *domain.Customer) {
	if business.TelegramGroupID == "" {
		return
	}
	ch, ok := s.channels[domain.ChannelTelegram]
	if !ok {
		return
	}

	name := customer.FullName
	if name == "" {
		name = "A customer"
	}
	var text strings.Builder
	fmt.Fprintf(&text, "🆕 New booking at %s\n", business.Name)
	fmt.Fprintf(&text, "👤 %s\n", name)
	fmt.Fprintf(&text, "📅 %s at %s\n", b.BookingDate, b.BookingTime)
	if b.PartySize != nil {
		fmt.Fprintf(&text, "👥 %d people\n", *b.PartySize)
	}
	if b.SpecialRequests != "" {
		fmt.Fprintf(&text, "📝 %s\n", b.SpecialRequests)
	}
	fmt.Fprintf(&text, "🔖 %s", b.Reference)

	if err := ch.ForwardToGroup(ctx, business.TelegramGroupID, text.String()); err != nil {
		s.logger.Error("failed to notify business group",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func newReference(prefix, date string) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceCharset[rand.IntN(len(referenceCharset))]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, strings.ReplaceAll(date, "-", ""), suffix)
}
