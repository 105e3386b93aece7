package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type BusinessRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context, businessID string) ([]*domain.Service, error)
}
