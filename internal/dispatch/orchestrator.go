// Package dispatch is the single entry point for inbound channel events. It
// resolves the tenant and customer, consults the AI collaborator, and drives
// the conversation machine, serializing events per customer.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
)

// Machine is the conversation state machine surface the orchestrator drives.
type Machine interface {
	HandleAction(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, act *domain.Action, draft domain.BookingDraft) (domain.BookingDraft, error)
	HandleCallback(ctx context.Context, ch ports.Channel, business *domain.Business, customer *domain.Customer, data string, draft domain.BookingDraft) (domain.BookingDraft, error)
}

// Reservations is the read surface needed to resolve tenants and build the
// system prompt.
type Reservations interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	ListServices(ctx context.Context, businessID string) ([]*domain.Service, error)
}

// Support exposes handoff session state.
type Support interface {
	Active(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error)
}

// InboundMessage is a free-text message from a customer.
type InboundMessage struct {
	BusinessID string
	Identity   domain.ChannelIdentity
	Text       string
}

// InboundCallback is an inline-button press.
type InboundCallback struct {
	BusinessID string
	Identity   domain.ChannelIdentity
	Data       string
}

const notConfiguredText = "This assistant isn't set up yet. Please try again later."
const apologyText = "Sorry, I'm having trouble thinking right now. Please try again in a moment."

type Orchestrator struct {
	machine      Machine
	reservations Reservations
	support      Support
	customers    ports.CustomerRepo
	history      ports.ConversationRepo
	ai           ports.AIClient
	channels     map[domain.ChannelKind]ports.Channel
	aiTimeout    time.Duration
	locks        *keyedMutex
	logger       logger.Logger
}

func NewOrchestrator(
	machine Machine,
	reservations Reservations,
	support Support,
	customers ports.CustomerRepo,
	history ports.ConversationRepo,
	ai ports.AIClient,
	channels map[domain.ChannelKind]ports.Channel,
	aiTimeout time.Duration,
	logger logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		machine:      machine,
		reservations: reservations,
		support:      support,
		customers:    customers,
		history:      history,
		ai:           ai,
		channels:     channels,
		aiTimeout:    aiTimeout,
		locks:        newKeyedMutex(),
		logger:       logger,
	}
}

// HandleMessage processes one inbound text message end to end. Every failure
// branch still sends the customer something.
func (o *Orchestrator) HandleMessage(ctx context.Context, msg InboundMessage) error {
	ch, ok := o.channels[msg.Identity.Kind]
	if !ok {
		return fmt.Errorf("no channel registered for %q", msg.Identity.Kind)
	}

	unlock := o.locks.lock(msg.BusinessID + "|" + msg.Identity.ExternalID)
	defer unlock()

	business, customer, err := o.resolve(ctx, ch, msg.BusinessID, msg.Identity)
	if err != nil || business == nil {
		return err
	}
	recipient := msg.Identity.ExternalID

	// Active handoff bypasses the AI path entirely.
	session, err := o.support.Active(ctx, customer.ID, business.ID)
	if err != nil {
		return fmt.Errorf("check support session: %w", err)
	}
	if session != nil {
		return o.forwardToStaff(ctx, business, customer, msg.Text)
	}

	if err = ch.SendTyping(ctx, recipient); err != nil {
		o.logger.Debug("typing indicator failed", logger.String("error", err.Error()))
	}

	recent, err := o.history.Recent(ctx, customer.ID, business.ID, domain.HistoryLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	services, err := o.reservations.ListServices(ctx, business.ID)
	if err != nil {
		o.logger.Error("failed to list services for prompt",
			logger.String("business_id", business.ID),
			logger.String("error", err.Error()),
		)
	}

	draft := customer.State.PendingBooking
	prompt := buildSystemPrompt(business, services, draft, time.Now().Format(time.DateOnly))

	aiCtx, cancel := context.WithTimeout(ctx, o.aiTimeout)
	defer cancel()
	result, err := o.ai.Generate(aiCtx, prompt, append(recent, domain.ChatMessage{
		Role:    domain.RoleUser,
		Content: msg.Text,
	}))
	if err != nil {
		// No state commit on AI failure: history and draft stay untouched.
		o.logger.Error("ai generate failed",
			logger.String("customer_id", customer.ID),
			logger.String("error", err.Error()),
		)
		return ch.SendMessage(ctx, recipient, apologyText)
	}

	o.appendHistory(ctx, customer.ID, business.ID, msg.Text, result.ReplyText)

	if result.ReplyText != "" {
		if err = ch.SendMessage(ctx, recipient, result.ReplyText); err != nil {
			o.logger.Error("failed to send reply",
				logger.String("customer_id", customer.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	newDraft, machineErr := o.machine.HandleAction(ctx, ch, business, customer, result.Action, draft)
	o.saveDraft(ctx, customer.ID, newDraft)
	return machineErr
}

// HandleCallback processes an inline-button press.
func (o *Orchestrator) HandleCallback(ctx context.Context, cb InboundCallback) error {
	ch, ok := o.channels[cb.Identity.Kind]
	if !ok {
		return fmt.Errorf("no channel registered for %q", cb.Identity.Kind)
	}

	unlock := o.locks.lock(cb.BusinessID + "|" + cb.Identity.ExternalID)
	defer unlock()

	business, customer, err := o.resolve(ctx, ch, cb.BusinessID, cb.Identity)
	if err != nil || business == nil {
		return err
	}

	// A stale button press during an active handoff must not drive the
	// machine; staff owns the conversation until the session resolves.
	session, err := o.support.Active(ctx, customer.ID, business.ID)
	if err != nil {
		return fmt.Errorf("check support session: %w", err)
	}
	if session != nil {
		return nil
	}

	newDraft, machineErr := o.machine.HandleCallback(ctx, ch, business, customer, cb.Data, customer.State.PendingBooking)
	o.saveDraft(ctx, customer.ID, newDraft)
	return machineErr
}

// resolve loads the tenant and the customer. A missing business is answered
// politely and reported as (nil, nil, nil).
func (o *Orchestrator) resolve(ctx context.Context, ch ports.Channel, businessID string, identity domain.ChannelIdentity) (*domain.Business, *domain.Customer, error) {
	business, err := o.reservations.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			if sendErr := ch.SendMessage(ctx, identity.ExternalID, notConfiguredText); sendErr != nil {
				o.logger.Error("failed to send not-configured reply",
					logger.String("error", sendErr.Error()),
				)
			}
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get business: %w", err)
	}

	customer, err := o.customers.GetOrCreateByIdentity(ctx, identity)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve customer: %w", err)
	}
	return business, customer, nil
}

func (o *Orchestrator) forwardToStaff(ctx context.Context, business *domain.Business, customer *domain.Customer, text string) error {
	if business.TelegramGroupID == "" {
		o.logger.Warn("support session active but business has no group",
			logger.String("business_id", business.ID),
		)
		return nil
	}
	groups, ok := o.channels[domain.ChannelTelegram]
	if !ok {
		return fmt.Errorf("no telegram channel for staff forwarding")
	}

	name := customer.FullName
	if name == "" {
		name = customer.ID
	}
	return groups.ForwardToGroup(ctx, business.TelegramGroupID, fmt.Sprintf("💬 %s: %s", name, text))
}

func (o *Orchestrator) appendHistory(ctx context.Context, customerID, businessID, userText, replyText string) {
	if err := o.history.Append(ctx, customerID, businessID, domain.RoleUser, userText); err != nil {
		o.logger.Error("failed to append user message", logger.String("error", err.Error()))
	}
	if replyText != "" {
		if err := o.history.Append(ctx, customerID, businessID, domain.RoleAssistant, replyText); err != nil {
			o.logger.Error("failed to append assistant message", logger.String("error", err.Error()))
		}
	}
	if err := o.history.TrimToLimit(ctx, customerID, businessID, domain.HistoryLimit); err != nil {
		o.logger.Error("failed to trim history", logger.String("error", err.Error()))
	}
}

// saveDraft persists the draft after every turn; it is the only durable
// record of an in-progress booking.
func (o *Orchestrator) saveDraft(ctx context.Context, customerID string, draft domain.BookingDraft) {
	err := o.customers.SaveState(ctx, customerID, domain.ConversationState{PendingBooking: draft})
	if err != nil {
		o.logger.Error("failed to persist draft",
			logger.String("customer_id", customerID),
			logger.String("error", err.Error()),
		)
	}
}
