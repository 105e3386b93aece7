package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

type reservationMocks struct {
	bookings  *mocks.MockBookingRepo
	business  *mocks.MockBusinessRepo
	customers *mocks.MockCustomerRepo
	reminders *mocks.MockReminderScheduler
	telegram  *mocks.MockChannel
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		bookings:  mocks.NewMockBookingRepo(t),
		business:  mocks.NewMockBusinessRepo(t),
		customers: mocks.NewMockCustomerRepo(t),
		reminders: mocks.NewMockReminderScheduler(t),
		telegram:  mocks.NewMockChannel(t),
	}
	channels := map[domain.ChannelKind]ports.Channel{
		domain.ChannelTelegram: m.telegram,
	}
	svc := NewReservationService(m.bookings, m.business, m.customers, m.reminders, channels, newTestLogger(t))
	return svc, m
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:   "biz1",
		Name: "Mama's Kitchen",
		Type: domain.BusinessTypeRestaurant,
		WorkingHours: domain.WorkingHours{
			"mon": {"09:00", "11:00"},
		},
		SlotDurationMinutes: 30,
		Timezone:            "Africa/Accra",
		ActiveChannel:       domain.ChannelTelegram,
		IsActive:            true,
	}
}

func testService() *domain.Service {
	return &domain.Service{
		ID:              "svc1",
		BusinessID:      "biz1",
		Name:            "Dinner table",
		DurationMinutes: 30,
		IsActive:        true,
	}
}

func TestReservationService_AvailableSlots_ExcludesBooked(t *testing.T) {
	svc, m := newReservationService(t)

	// 2030-05-20 is a Monday.
	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)
	m.bookings.EXPECT().BookedSlots(mock.Anything, "biz1", "2030-05-20").Return([]domain.BookedSlot{
		{Time: "09:30", DurationMinutes: 30},
	}, nil)

	slots, err := svc.AvailableSlots(context.Background(), "biz1", "svc1", "2030-05-20")

	require.NoError(t, err)
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, times)
}

func TestReservationService_AvailableSlots_ClosedDay(t *testing.T) {
	svc, m := newReservationService(t)

	// 2030-05-21 is a Tuesday; the business only opens Mondays.
	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)

	slots, err := svc.AvailableSlots(context.Background(), "biz1", "svc1", "2030-05-21")

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestReservationService_AvailableSlots_BadDate(t *testing.T) {
	svc, m := newReservationService(t)

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)

	_, err := svc.AvailableSlots(context.Background(), "biz1", "svc1", "not-a-date")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_AvailableSlots_UnknownServiceFallsBack(t *testing.T) {
	svc, m := newReservationService(t)

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "ghost").Return(nil, domain.ErrServiceNotFound)
	m.bookings.EXPECT().BookedSlots(mock.Anything, "biz1", "2030-05-20").Return(nil, nil)

	slots, err := svc.AvailableSlots(context.Background(), "biz1", "ghost", "2030-05-20")

	require.NoError(t, err)
	assert.Len(t, slots, 4) // 30-minute fallback over a two-hour day
}

func TestReservationService_CreateBooking_NoService_Succeeds(t *testing.T) {
	svc, m := newReservationService(t)
	fixed := time.Date(2030, 5, 19, 8, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return fixed })

	business := testBusiness()
	customer := &domain.Customer{ID: "cust1", TelegramID: "42", FullName: "Ama"}

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(business, nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(customer, nil)

	var created *domain.Booking
	m.bookings.EXPECT().
		Create(mock.Anything, mock.Anything, domain.FallbackDurationMinutes).
		Run(func(_ context.Context, b *domain.Booking, _ int) { created = b }).
		Return(nil)
	m.reminders.EXPECT().Schedule(mock.Anything).Return(nil, nil)
	m.bookings.EXPECT().SetReminderJobs(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		Date:       "2030-05-20",
		Time:       "19:00",
		PartySize:  intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, created)
	assert.Empty(t, created.ServiceID)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Equal(t, fixed, created.UpdatedAt)
}

func TestReservationService_CreateBooking_Success(t *testing.T) {
	svc, m := newReservationService(t)

	business := testBusiness()
	business.TelegramGroupID = "-100123"
	customer := &domain.Customer{ID: "cust1", TelegramID: "42", FullName: "Ama"}

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(business, nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(customer, nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, 30).Return(nil)
	m.reminders.EXPECT().Schedule(mock.Anything).Return(strPtr("reminder_24h_x"), strPtr("reminder_1h_x"))
	m.bookings.EXPECT().SetReminderJobs(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.telegram.EXPECT().ForwardToGroup(mock.Anything, "-100123", mock.Anything).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		ServiceID:  "svc1",
		Date:       "2030-05-20",
		Time:       "19:00",
		PartySize:  intPtr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Regexp(t, `^RST-20300520-[A-Z2-9]{4}$`, booking.Reference)
	require.NotNil(t, booking.Reminder24hJobID)
	require.NotNil(t, booking.Reminder1hJobID)

	time.Sleep(50 * time.Millisecond) // goroutine group notify
}

func TestReservationService_CreateBooking_SlotTaken(t *testing.T) {
	svc, m := newReservationService(t)

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(&domain.Customer{ID: "cust1"}, nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, 30).Return(domain.ErrSlotTaken)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		ServiceID:  "svc1",
		Date:       "2030-05-20",
		Time:       "19:00",
	})

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_CreateBooking_RetriesReferenceCollision(t *testing.T) {
	svc, m := newReservationService(t)

	customer := &domain.Customer{ID: "cust1", TelegramID: "42"}
	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(customer, nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)

	var refs []string
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, 30).
		Run(func(_ context.Context, b *domain.Booking, _ int) {
			refs = append(refs, b.Reference)
		}).
		Return(domain.ErrReferenceTaken).Twice()
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything, 30).
		Run(func(_ context.Context, b *domain.Booking, _ int) {
			refs = append(refs, b.Reference)
		}).
		Return(nil).Once()
	m.reminders.EXPECT().Schedule(mock.Anything).Return(nil, nil)
	m.bookings.EXPECT().SetReminderJobs(mock.Anything, mock.Anything, (*string)(nil), (*string)(nil)).Return(nil)

	booking, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		ServiceID:  "svc1",
		Date:       "2030-05-20",
		Time:       "19:00",
	})

	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, booking.Reference, refs[2])
}

func TestReservationService_CreateBooking_BadTime(t *testing.T) {
	svc, m := newReservationService(t)

	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(&domain.Customer{ID: "cust1"}, nil)

	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		Date:       "2030-05-20",
		Time:       "25:99",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_RescheduleBooking_Success(t *testing.T) {
	svc, m := newReservationService(t)

	existing := &domain.Booking{
		ID:               "b1",
		BusinessID:       "biz1",
		CustomerID:       "cust1",
		ServiceID:        "svc1",
		BookingDate:      "2030-05-20",
		BookingTime:      "19:00",
		Status:           domain.BookingStatusConfirmed,
		Reference:        "RST-20300520-AB12",
		Reminder24hJobID: strPtr("reminder_24h_b1"),
		Reminder1hJobID:  strPtr("reminder_1h_b1"),
	}
	customer := &domain.Customer{ID: "cust1", TelegramID: "42"}

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)
	m.bookings.EXPECT().Reschedule(mock.Anything, existing, 30).Return(nil)
	m.reminders.EXPECT().Cancel(strPtr("reminder_24h_b1"), strPtr("reminder_1h_b1")).Return()
	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(customer, nil)
	m.reminders.EXPECT().Schedule(mock.Anything).Return(strPtr("reminder_24h_b1"), strPtr("reminder_1h_b1"))
	m.bookings.EXPECT().SetReminderJobs(mock.Anything, "b1", mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.RescheduleBooking(context.Background(), "b1", "2030-05-27", "20:00")

	require.NoError(t, err)
	assert.Equal(t, "2030-05-27", booking.BookingDate)
	assert.Equal(t, "20:00", booking.BookingTime)
}

func TestReservationService_RescheduleBooking_SlotTaken(t *testing.T) {
	svc, m := newReservationService(t)

	existing := &domain.Booking{
		ID:         "b1",
		BusinessID: "biz1",
		ServiceID:  "svc1",
		Status:     domain.BookingStatusConfirmed,
	}
	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(existing, nil)
	m.business.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(testService(), nil)
	m.bookings.EXPECT().Reschedule(mock.Anything, existing, 30).Return(domain.ErrSlotTaken)

	_, err := svc.RescheduleBooking(context.Background(), "b1", "2030-05-27", "20:00")

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestReservationService_RescheduleBooking_Cancelled(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCancelled,
	}, nil)

	_, err := svc.RescheduleBooking(context.Background(), "b1", "2030-05-27", "20:00")

	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestReservationService_CancelBooking_Success(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:               "b1",
		Status:           domain.BookingStatusConfirmed,
		Reminder24hJobID: strPtr("reminder_24h_b1"),
	}, nil)
	m.reminders.EXPECT().Cancel(strPtr("reminder_24h_b1"), (*string)(nil)).Return()
	m.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(true, nil)

	cancelled, err := svc.CancelBooking(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestReservationService_CancelBooking_Idempotent(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookings.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrBookingNotFound)

	cancelled, err := svc.CancelBooking(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, cancelled)

	m.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusCancelled,
	}, nil)

	cancelled, err = svc.CancelBooking(context.Background(), "b1")
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestReservationService_GetBookingByReference(t *testing.T) {
	svc, m := newReservationService(t)

	expected := &domain.Booking{ID: "b1", Reference: "RST-20300520-A2B3"}
	m.bookings.EXPECT().GetByReference(mock.Anything, "RST-20300520-A2B3").Return(expected, nil)

	booking, err := svc.GetBookingByReference(context.Background(), "RST-20300520-A2B3")

	require.NoError(t, err)
	assert.Equal(t, expected, booking)
}

func TestReservationService_GetBookingByReference_Empty(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.GetBookingByReference(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListUpcoming(t *testing.T) {
	svc, m := newReservationService(t)
	svc.WithClock(func() time.Time {
		return time.Date(2030, 5, 20, 12, 0, 0, 0, time.UTC)
	})

	expected := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	m.bookings.EXPECT().ListUpcomingByCustomer(mock.Anything, "cust1", "biz1", "2030-05-20").Return(expected, nil)

	bookings, err := svc.ListUpcoming(context.Background(), "cust1", "biz1")

	require.NoError(t, err)
	assert.Equal(t, expected, bookings)
}

func TestReservationService_CompleteFinished(t *testing.T) {
	svc, m := newReservationService(t)

	m.bookings.EXPECT().CompleteFinished(mock.Anything).Return(int64(3), nil)

	n, err := svc.CompleteFinished(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestReservationService_RestoreReminders(t *testing.T) {
	svc, m := newReservationService(t)
	svc.WithClock(func() time.Time {
		return time.Date(2030, 5, 19, 8, 0, 0, 0, time.UTC)
	})

	bookings := []*domain.Booking{
		{ID: "b1", BusinessID: "biz1", CustomerID: "cust1", BookingDate: "2030-05-20", BookingTime: "19:00"},
		{ID: "b2", BusinessID: "biz1", CustomerID: "cust1", BookingDate: "2030-05-21", BookingTime: "10:00"},
	}
	customer := &domain.Customer{ID: "cust1", TelegramID: "42"}

	m.bookings.EXPECT().ListUpcomingConfirmed(mock.Anything, "2030-05-19").Return(bookings, nil)
	m.business.EXPECT().GetByID(mock.Anything, "biz1").Return(testBusiness(), nil).Once()
	m.customers.EXPECT().GetByID(mock.Anything, "cust1").Return(customer, nil).Twice()
	m.reminders.EXPECT().Schedule(mock.Anything).Return(nil, nil).Twice()
	m.bookings.EXPECT().SetReminderJobs(mock.Anything, mock.Anything, (*string)(nil), (*string)(nil)).Return(nil).Twice()

	err := svc.RestoreReminders(context.Background())

	require.NoError(t, err)
}

func TestSupportService_InitiateAndResolve(t *testing.T) {
	repo := mocks.NewMockSupportRepo(t)
	svc := NewSupportService(repo, newTestLogger(t))

	repo.EXPECT().GetActive(mock.Anything, "cust1", "biz1").Return(nil, nil).Once()
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Initiate(context.Background(), "cust1", "biz1")
	require.NoError(t, err)
	assert.True(t, session.IsActive)
	assert.NotEmpty(t, session.ID)

	repo.EXPECT().GetActive(mock.Anything, "cust1", "biz1").Return(session, nil).Once()

	again, err := svc.Initiate(context.Background(), "cust1", "biz1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, again.ID)

	repo.EXPECT().Resolve(mock.Anything, "cust1", "biz1").Return(true, nil)

	resolved, err := svc.Resolve(context.Background(), "cust1", "biz1")
	require.NoError(t, err)
	assert.True(t, resolved)
}

func TestSupportService_Initiate_RepoError(t *testing.T) {
	repo := mocks.NewMockSupportRepo(t)
	svc := NewSupportService(repo, newTestLogger(t))

	repo.EXPECT().GetActive(mock.Anything, "cust1", "biz1").Return(nil, errors.New("db down"))

	_, err := svc.Initiate(context.Background(), "cust1", "biz1")
	assert.Error(t, err)
}
