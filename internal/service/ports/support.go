package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type SupportRepo interface {
	GetActive(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error)
	Create(ctx context.Context, s *domain.SupportSession) error
	// Resolve closes the active session; reports whether one existed.
	Resolve(ctx context.Context, customerID, businessID string) (bool, error)
}
