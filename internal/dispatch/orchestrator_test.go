package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/dispatch/mocks"
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

type orchestratorMocks struct {
	machine      *mocks.MockMachine
	reservations *mocks.MockReservations
	support      *mocks.MockSupport
	customers    *pmocks.MockCustomerRepo
	history      *pmocks.MockConversationRepo
	ai           *pmocks.MockAIClient
	telegram     *pmocks.MockChannel
}

func newOrchestrator(t *testing.T) (*Orchestrator, orchestratorMocks) {
	t.Helper()
	m := orchestratorMocks{
		machine:      mocks.NewMockMachine(t),
		reservations: mocks.NewMockReservations(t),
		support:      mocks.NewMockSupport(t),
		customers:    pmocks.NewMockCustomerRepo(t),
		history:      pmocks.NewMockConversationRepo(t),
		ai:           pmocks.NewMockAIClient(t),
		telegram:     pmocks.NewMockChannel(t),
	}
	channels := map[domain.ChannelKind]ports.Channel{
		domain.ChannelTelegram: m.telegram,
	}
	o := NewOrchestrator(m.machine, m.reservations, m.support, m.customers, m.history, m.ai,
		channels, 2*time.Second, newTestLogger(t))
	return o, m
}

func testBusiness() *domain.Business {
	return &domain.Business{
		ID:            "biz1",
		Name:          "Mama's Kitchen",
		WorkingHours:  domain.WorkingHours{"mon": {"09:00", "17:00"}},
		Timezone:      "Africa/Accra",
		ActiveChannel: domain.ChannelTelegram,
	}
}

func testIdentity() domain.ChannelIdentity {
	return domain.ChannelIdentity{
		Kind:       domain.ChannelTelegram,
		ExternalID: "42",
		FullName:   "Ama",
	}
}

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: "cust1", TelegramID: "42", FullName: "Ama"}
}

func TestOrchestrator_HandleMessage_FullTurn(t *testing.T) {
	o, m := newOrchestrator(t)

	business := testBusiness()
	customer := testCustomer()
	action := &domain.Action{Kind: domain.ActionShowSlots, Date: "2030-05-20"}

	m.reservations.EXPECT().GetBusiness(mock.Anything, "biz1").Return(business, nil)
	m.customers.EXPECT().GetOrCreateByIdentity(mock.Anything, testIdentity()).Return(customer, nil)
	m.support.EXPECT().Active(mock.Anything, "cust1", "biz1").Return(nil, nil)
	m.telegram.EXPECT().SendTyping(mock.Anything, "42").Return(nil)
	m.history.EXPECT().Recent(mock.Anything, "cust1", "biz1", domain.HistoryLimit).Return([]domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: "Hello!"},
	}, nil)
	m.reservations.EXPECT().ListServices(mock.Anything, "biz1").Return(nil, nil)
	m.ai.EXPECT().Generate(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Mama's Kitchen")
	}), mock.MatchedBy(func(msgs []domain.ChatMessage) bool {
		return len(msgs) == 2 && msgs[1].Content == "book a table tomorrow"
	})).Return(&domain.AIResult{ReplyText: "Let me check!", Action: action}, nil)
	m.history.EXPECT().Append(mock.Anything, "cust1", "biz1", domain.RoleUser, "book a table tomorrow").Return(nil)
	m.history.EXPECT().Append(mock.Anything, "cust1", "biz1", domain.RoleAssistant, "Let me check!").Return(nil)
	m.history.EXPECT().TrimToLimit(mock.Anything, "cust1", "biz1", domain.HistoryLimit).Return(nil)
	m.telegram.EXPECT().SendMessage(mock.Anything, "42", "Let me check!").Return(nil)

	newDraft := domain.BookingDraft{Date: "2030-05-20"}
	m.machine.EXPECT().HandleAction(mock.Anything, m.telegram, business, customer, action, domain.BookingDraft{}).
		Return(newDraft, nil)
	m.customers.EXPECT().SaveState(mock.Anything, "cust1", domain.ConversationState{PendingBooking: newDraft}).Return(nil)

	err := o.HandleMessage(context.Background(), InboundMessage{
		BusinessID: "biz1",
		Identity:   testIdentity(),
		Text:       "book a table tomorrow",
	})

	require.NoError(t, err)
}

func TestOrchestrator_HandleMessage_UnknownBusiness(t *testing.T) {
	o, m := newOrchestrator(t)

	m.reservations.EXPECT().GetBusiness(mock.Anything, "ghost").Return(nil, domain.ErrBusinessNotFound)
	m.telegram.EXPECT().SendMessage(mock.Anything, "42", notConfiguredText).Return(nil)

	err := o.HandleMessage(context.Background(), InboundMessage{
		BusinessID: "ghost",
		Identity:   testIdentity(),
		Text:       "hi",
	})

	require.NoError(t, err)
}

func TestOrchestrator_HandleMessage_AIFailureSendsApology(t *testing.T) {
	o, m := newOrchestrator(t)

	m.reservations.EXPECT().GetBusiness(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetOrCreateByIdentity(mock.Anything, testIdentity()).Return(testCustomer(), nil)
	m.support.EXPECT().Active(mock.Anything, "cust1", "biz1").Return(nil, nil)
	m.telegram.EXPECT().SendTyping(mock.Anything, "42").Return(nil)
	m.history.EXPECT().Recent(mock.Anything, "cust1", "biz1", domain.HistoryLimit).Return(nil, nil)
	m.reservations.EXPECT().ListServices(mock.Anything, "biz1").Return(nil, nil)
	m.ai.EXPECT().Generate(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	m.telegram.EXPECT().SendMessage(mock.Anything, "42", apologyText).Return(nil)

	err := o.HandleMessage(context.Background(), InboundMessage{
		BusinessID: "biz1",
		Identity:   testIdentity(),
		Text:       "hello",
	})

	// No history append, no draft save: state is untouched on AI failure.
	require.NoError(t, err)
}

func TestOrchestrator_HandleMessage_ActiveHandoffForwards(t *testing.T) {
	o, m := newOrchestrator(t)

	business := testBusiness()
	business.TelegramGroupID = "-100123"

	m.reservations.EXPECT().GetBusiness(mock.Anything, "biz1").Return(business, nil)
	m.customers.EXPECT().GetOrCreateByIdentity(mock.Anything, testIdentity()).Return(testCustomer(), nil)
	m.support.EXPECT().Active(mock.Anything, "cust1", "biz1").Return(&domain.SupportSession{ID: "s1", IsActive: true}, nil)
	m.telegram.EXPECT().ForwardToGroup(mock.Anything, "-100123", "💬 Ama: where is my order?").Return(nil)

	err := o.HandleMessage(context.Background(), InboundMessage{
		BusinessID: "biz1",
		Identity:   testIdentity(),
		Text:       "where is my order?",
	})

	require.NoError(t, err)
}

func TestOrchestrator_HandleCallback(t *testing.T) {
	o, m := newOrchestrator(t)

	business := testBusiness()
	customer := testCustomer()
	customer.State.PendingBooking = domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"}

	m.reservations.EXPECT().GetBusiness(mock.Anything, "biz1").Return(business, nil)
	m.customers.EXPECT().GetOrCreateByIdentity(mock.Anything, testIdentity()).Return(customer, nil)
	m.support.EXPECT().Active(mock.Anything, "cust1", "biz1").Return(nil, nil)

	newDraft := domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20", Time: "19:00"}
	m.machine.EXPECT().HandleCallback(mock.Anything, m.telegram, business, customer, "19:00", customer.State.PendingBooking).
		Return(newDraft, nil)
	m.customers.EXPECT().SaveState(mock.Anything, "cust1", domain.ConversationState{PendingBooking: newDraft}).Return(nil)

	err := o.HandleCallback(context.Background(), InboundCallback{
		BusinessID: "biz1",
		Identity:   testIdentity(),
		Data:       "19:00",
	})

	require.NoError(t, err)
}

func TestOrchestrator_HandleCallback_ActiveHandoffIgnored(t *testing.T) {
	o, m := newOrchestrator(t)

	m.reservations.EXPECT().GetBusiness(mock.Anything, "biz1").Return(testBusiness(), nil)
	m.customers.EXPECT().GetOrCreateByIdentity(mock.Anything, testIdentity()).Return(testCustomer(), nil)
	m.support.EXPECT().Active(mock.Anything, "cust1", "biz1").Return(&domain.SupportSession{ID: "s1", IsActive: true}, nil)

	err := o.HandleCallback(context.Background(), InboundCallback{
		BusinessID: "biz1",
		Identity:   testIdentity(),
		Data:       "19:00",
	})

	// Staff owns the conversation: the machine never runs and no draft is saved.
	require.NoError(t, err)
}

func TestOrchestrator_HandleMessage_NoChannel(t *testing.T) {
	o, _ := newOrchestrator(t)

	err := o.HandleMessage(context.Background(), InboundMessage{
		BusinessID: "biz1",
		Identity:   domain.ChannelIdentity{Kind: domain.ChannelWhatsApp, ExternalID: "+233201234567"},
		Text:       "hi",
	})

	assert.Error(t, err)
}

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex()

	var order []int
	unlock := km.lock("a")
	done := make(chan struct{})
	go func() {
		u := km.lock("a")
		order = append(order, 2)
		u()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	order = append(order, 1)
	unlock()
	<-done

	assert.Equal(t, []int{1, 2}, order)
}

func TestBuildSystemPrompt(t *testing.T) {
	business := testBusiness()
	price := 25.0
	services := []*domain.Service{
		{ID: "svc1", Name: "Dinner table", DurationMinutes: 90, Price: &price},
	}
	draft := domain.BookingDraft{ServiceID: "svc1", Date: "2030-05-20"}

	prompt := buildSystemPrompt(business, services, draft, "2030-05-19")

	assert.Contains(t, prompt, "Mama's Kitchen")
	assert.Contains(t, prompt, "Today's date is 2030-05-19")
	assert.Contains(t, prompt, "Monday: 09:00 to 17:00")
	assert.Contains(t, prompt, "Tuesday: closed")
	assert.Contains(t, prompt, "Dinner table (id: svc1, 90 min, 25.00)")
	assert.Contains(t, prompt, "booking in progress")
	assert.Contains(t, prompt, "ACTION: SHOW_SLOTS")
}
