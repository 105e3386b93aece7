package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/conversation/mocks"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
	pmocks "github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports/mocks"
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

type machineMocks struct {
	reservations *mocks.MockReservations
	support      *mocks.MockSupport
	channel      *pmocks.MockChannel
	groups       *pmocks.MockChannel
}

func newMachine(t *testing.T) (*Machine, machineMocks) {
	t.Helper()
	m := machineMocks{
		reservations: mocks.NewMockReservations(t),
		support:      mocks.NewMockSupport(t),
		channel:      pmocks.NewMockChannel(t),
		groups:       pmocks.NewMockChannel(t),
	}
	return NewMachine(m.reservations, m.support, m.groups, newTestLogger(t)), m
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:            "biz1",
		Name:          "Mama's Kitchen",
		Type:          domain.BusinessTypeRestaurant,
		ActiveChannel: domain.ChannelTelegram,
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: "cust1", TelegramID: "42", FullName: "Ama"}
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateIdle, StateOf(domain.BookingDraft{}))
	assert.Equal(t, StateCollectingSlot, StateOf(domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"}))
	assert.Equal(t, StateAwaitingConfirmation, StateOf(domain.BookingDraft{Date: "2030-05-20", Time: "19:00"}))
}

func TestMachine_ShowSlots_PresentsList(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().AvailableSlots(mock.Anything, "biz1", "svc1", "2030-05-20").Return([]domain.Slot{
		{Label: "7:00 PM", Time: "19:00"},
		{Label: "7:30 PM", Time: "19:30"},
	}, nil)
	m.channel.EXPECT().SendList(mock.Anything, "42", mock.Anything, []ports.Button{
		{Label: "7:00 PM", Action: "19:00"},
		{Label: "7:30 PM", Action: "19:30"},
	}).Return(nil)

	draft, err := machine.HandleAction(context.Background(), m.channel, testBusiness(), testCustomer(), &domain.Action{
		Kind:      domain.ActionShowSlots,
		ServiceID: "svc1",
		Date:      "2030-05-20",
		PartySize: intPtr(2),
	}, domain.BookingDraft{})

	require.NoError(t, err)
	assert.Equal(t, StateCollectingSlot, StateOf(draft))
	assert.Equal(t, "svc1", draft.ServiceID)
	assert.Equal(t, "2030-05-20", draft.Date)
	require.NotNil(t, draft.PartySize)
	assert.Equal(t, 2, *draft.PartySize)
}

func TestMachine_ShowSlots_MissingDateAsks(t *testing.T) {
	machine, m := newMachine(t)

	m.channel.EXPECT().SendMessage(mock.Anything, "42", askDateText()).Return(nil)

	draft, err := machine.HandleAction(context.Background(), m.channel, testBusiness(), testCustomer(), &domain.Action{
		Kind:      domain.ActionShowSlots,
		ServiceID: "svc1",
	}, domain.BookingDraft{})

	require.NoError(t, err)
	assert.Equal(t, StateIdle, StateOf(draft))
}

func TestMachine_ShowSlots_FullyBookedOffersDifferentDate(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().AvailableSlots(mock.Anything, "biz1", "svc1", "2030-05-20").Return(nil, nil)
	m.channel.EXPECT().SendButtons(mock.Anything, "42", mock.Anything, []ports.Button{
		{Label: "Try another date", Action: "different_date"},
	}).Return(nil)

	_, err := machine.HandleAction(context.Background(), m.channel, testBusiness(), testCustomer(), &domain.Action{
		Kind: domain.ActionShowSlots,
	}, domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"})

	require.NoError(t, err)
}

func TestMachine_SlotCallback_MovesToAwaitingConfirmation(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().GetService(mock.Anything, "biz1", "svc1").Return(&domain.Service{Name: "Dinner table"}, nil)
	m.channel.EXPECT().SendButtons(mock.Anything, "42", mock.Anything, []ports.Button{
		{Label: "✅ Confirm", Action: "confirm_booking"},
		{Label: "❌ Cancel", Action: "cancel_booking"},
	}).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "19:00",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"})

	require.NoError(t, err)
	assert.Equal(t, StateAwaitingConfirmation, StateOf(draft))
	assert.Equal(t, "19:00", draft.Time)
}

func TestMachine_SlotCallback_WithoutDateReprompts(t *testing.T) {
	machine, m := newMachine(t)

	m.channel.EXPECT().SendMessage(mock.Anything, "42", askDateText()).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "19:00",
		domain.BookingDraft{})

	require.NoError(t, err)
	assert.Equal(t, StateIdle, StateOf(draft))
}

func TestMachine_ConfirmCallback_CreatesBooking(t *testing.T) {
	machine, m := newMachine(t)

	booking := &domain.Booking{
		ID:          "b1",
		BookingDate: "2030-05-20",
		BookingTime: "19:00",
		Status:      domain.BookingStatusConfirmed,
		Reference:   "RST-20300520-AB12",
	}
	m.reservations.EXPECT().CreateBooking(mock.Anything, domain.CreateBookingInput{
		BusinessID: "biz1",
		CustomerID: "cust1",
		ServiceID:  "svc1",
		Date:       "2030-05-20",
		Time:       "19:00",
		PartySize:  intPtr(2),
	}).Return(booking, nil)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", bookingConfirmedText(booking, "Mama's Kitchen")).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "confirm_booking",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20", Time: "19:00", PartySize: intPtr(2)})

	require.NoError(t, err)
	assert.True(t, draft.IsEmpty(), "draft must be cleared after commit")
}

func TestMachine_ConfirmCallback_SlotTakenClearsTime(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", slotTakenText()).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "confirm_booking",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20", Time: "19:00"})

	require.NoError(t, err)
	assert.Equal(t, StateCollectingSlot, StateOf(draft))
	assert.Empty(t, draft.Time)
	assert.Equal(t, "2030-05-20", draft.Date)
}

func TestMachine_ConfirmCallback_IncompleteDraftReprompts(t *testing.T) {
	machine, m := newMachine(t)

	m.channel.EXPECT().SendMessage(mock.Anything, "42", pickTimeText()).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "confirm_booking",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"})

	require.NoError(t, err)
	assert.Equal(t, StateCollectingSlot, StateOf(draft))
}

func TestMachine_CancelCallback_ClearsDraftAnywhere(t *testing.T) {
	machine, m := newMachine(t)

	m.channel.EXPECT().SendMessage(mock.Anything, "42", draftCancelledText()).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "cancel_booking",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20", Time: "19:00"})

	require.NoError(t, err)
	assert.True(t, draft.IsEmpty())
}

func TestMachine_ShowBookings_Empty(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().ListUpcoming(mock.Anything, "cust1", "biz1").Return(nil, nil)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", noBookingsText()).Return(nil)

	_, err := machine.HandleAction(context.Background(), m.channel, testBusiness(), testCustomer(), &domain.Action{
		Kind: domain.ActionShowBookings,
	}, domain.BookingDraft{})

	require.NoError(t, err)
}

func TestMachine_ManageCancelCallback(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().GetBooking(mock.Anything, "b1").Return(&domain.Booking{
		ID:        "b1",
		Reference: "RST-20300520-AB12",
	}, nil)
	m.reservations.EXPECT().CancelBooking(mock.Anything, "b1").Return(true, nil)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", bookingCancelledText("RST-20300520-AB12")).Return(nil)

	_, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "manage_cancel_b1",
		domain.BookingDraft{})

	require.NoError(t, err)
}

func TestMachine_ManageCancelCallback_AlreadyCancelled(t *testing.T) {
	machine, m := newMachine(t)

	m.reservations.EXPECT().GetBooking(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound)
	m.reservations.EXPECT().CancelBooking(mock.Anything, "b1").Return(false, nil)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", alreadyCancelledText()).Return(nil)

	_, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "manage_cancel_b1",
		domain.BookingDraft{})

	require.NoError(t, err)
}

func TestMachine_HumanHandoff(t *testing.T) {
	machine, m := newMachine(t)

	business := testBusiness()
	business.TelegramGroupID = "-100123"

	m.support.EXPECT().Initiate(mock.Anything, "cust1", "biz1").Return(&domain.SupportSession{ID: "s1"}, nil)
	m.groups.EXPECT().ForwardToGroup(mock.Anything, "-100123", handoffGroupText("Ama")).Return(nil)
	m.channel.EXPECT().SendMessage(mock.Anything, "42", handoffCustomerText("Mama's Kitchen")).Return(nil)

	_, err := machine.HandleAction(context.Background(), m.channel, business, testCustomer(), &domain.Action{
		Kind: domain.ActionHumanHandoff,
	}, domain.BookingDraft{})

	require.NoError(t, err)
}

func TestMachine_UnknownCallback_Reprompts(t *testing.T) {
	machine, m := newMachine(t)

	m.channel.EXPECT().SendMessage(mock.Anything, "42", pickTimeText()).Return(nil)

	draft, err := machine.HandleCallback(context.Background(), m.channel, testBusiness(), testCustomer(), "gibberish",
		domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"})

	require.NoError(t, err)
	assert.Equal(t, StateCollectingSlot, StateOf(draft))
}
