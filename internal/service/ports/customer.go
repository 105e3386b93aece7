package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type CustomerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	// GetOrCreateByIdentity resolves a customer by channel identity, creating
	// one on first contact.
	GetOrCreateByIdentity(ctx context.Context, identity domain.ChannelIdentity) (*domain.Customer, error)
	// SaveState persists the conversation-state JSON (the pending booking
	// draft) for a customer.
	SaveState(ctx context.Context, customerID string, state domain.ConversationState) error
}
