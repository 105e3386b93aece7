package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type ConversationRepo interface {
	// Recent returns the last `limit` messages in chronological order.
	Recent(ctx context.Context, customerID, businessID string, limit int) ([]domain.ChatMessage, error)
	Append(ctx context.Context, customerID, businessID string, role domain.MessageRole, content string) error
	// TrimToLimit deletes everything but the most recent `limit` messages.
	TrimToLimit(ctx context.Context, customerID, businessID string, limit int) error
}
