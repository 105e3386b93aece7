package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

// AIClient is the opaque AI collaborator. Action tags are decoded at the
// client boundary; callers only see the typed result.
type AIClient interface {
	Generate(ctx context.Context, systemPrompt string, messages []domain.ChatMessage) (*domain.AIResult, error)
}
