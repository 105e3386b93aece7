package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/service/ports"
)

// SupportService manages human-handoff sessions. While a session is active
// the dispatcher bypasses the AI and relays messages to staff.
type SupportService struct {
	supportRepo ports.SupportRepo
	logger      logger.Logger
}

func NewSupportService(supportRepo ports.SupportRepo, logger logger.Logger) *SupportService {
	return &SupportService{
		supportRepo: supportRepo,
		logger:      logger,
	}
}

// Active returns the open session for the pair, or nil.
func (s *SupportService) Active(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error) {
	return s.supportRepo.GetActive(ctx, customerID, businessID)
}

// Initiate opens a handoff session. Already having one is not an error; the
// existing session is returned.
func (s *SupportService) Initiate(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error) {
	existing, err := s.supportRepo.GetActive(ctx, customerID, businessID)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	session := &domain.SupportSession{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		BusinessID: businessID,
		IsActive:   true,
		StartedAt:  time.Now().UTC(),
	}
	if err = s.supportRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("support session started",
		logger.String("session_id", session.ID),
		logger.String("customer_id", customerID),
		logger.String("business_id", businessID),
	)
	return session, nil
}

// Resolve closes the active session and reports whether one existed.
func (s *SupportService) Resolve(ctx context.Context, customerID, businessID string) (bool, error) {
	resolved, err := s.supportRepo.Resolve(ctx, customerID, businessID)
	if err != nil {
		return false, fmt.Errorf("resolve session: %w", err)
	}
	if resolved {
		s.logger.Info("support session resolved",
			logger.String("customer_id", customerID),
			logger.String("business_id", businessID),
		)
	}
	return resolved, nil
}
