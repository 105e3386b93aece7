package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type SupportRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSupportRepo(db *dbpg.DB) *SupportRepository {
	return &SupportRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// GetActive returns the active session for a customer/business pair, or nil
// when the customer is not in a handoff.
func (r *SupportRepository) GetActive(ctx context.Context, customerID, businessID string) (*domain.SupportSession, error) {
	query := `SELECT id, customer_id, business_id, is_active, started_at, resolved_at
			  FROM support_sessions
			  WHERE customer_id = $1 AND business_id = $2 AND is_active
			  ORDER BY started_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, customerID, businessID)
	if err != nil {
		return nil, fmt.Errorf("get support session: %w", err)
	}

	var (
		s        domain.SupportSession
		resolved sql.NullTime
	)
	err = row.Scan(&s.ID, &s.CustomerID, &s.BusinessID, &s.IsActive, &s.StartedAt, &resolved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan support session: %w", err)
	}
	if resolved.Valid {
		s.ResolvedAt = &resolved.Time
	}
	return &s, nil
}

func (r *SupportRepository) Create(ctx context.Context, s *domain.SupportSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO support_sessions (id, customer_id, business_id, is_active, started_at)
			  VALUES ($1, $2, $3, TRUE, $4)`
	_, err = tx.ExecContext(ctx, query, s.ID, s.CustomerID, s.BusinessID, s.StartedAt)
	if err != nil {
		return fmt.Errorf("insert support session: %w", err)
	}
	return tx.Commit()
}

func (r *SupportRepository) Resolve(ctx context.Context, customerID, businessID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE support_sessions
			  SET is_active = FALSE, resolved_at = now()
			  WHERE customer_id = $1 AND business_id = $2 AND is_active`
	res, err := tx.ExecContext(ctx, query, customerID, businessID)
	if err != nil {
		return false, fmt.Errorf("resolve support session: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("support rows affected: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return rows > 0, nil
}
