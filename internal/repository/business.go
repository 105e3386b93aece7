package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type BusinessRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBusinessRepo(db *dbpg.DB) *BusinessRepository {
	return &BusinessRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BusinessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	query := `SELECT id, name, type, COALESCE(telegram_group_id, ''), working_hours,
					 slot_duration_minutes, timezone, COALESCE(location, ''),
					 COALESCE(phone, ''), COALESCE(faq, ''), active_channel, is_active,
					 created_at, updated_at
			  FROM businesses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}

	var (
		b        domain.Business
		hoursRaw []byte
	)
	err = row.Scan(
		&b.ID, &b.Name, &b.Type, &b.TelegramGroupID, &hoursRaw,
		&b.SlotDurationMinutes, &b.Timezone, &b.Location,
		&b.Phone, &b.FAQ, &b.ActiveChannel, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("scan business: %w", err)
	}
	if err = json.Unmarshal(hoursRaw, &b.WorkingHours); err != nil {
		return nil, fmt.Errorf("decode working hours: %w", err)
	}
	return &b, nil
}

func (r *BusinessRepository) GetService(ctx context.Context, businessID, serviceID string) (*domain.Service, error) {
	query := `SELECT id, business_id, name, COALESCE(description, ''),
					 duration_minutes, price, capacity, is_active, created_at, updated_at
			  FROM services
			  WHERE id = $1 AND business_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, serviceID, businessID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	s, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}
	return s, nil
}

func (r *BusinessRepository) ListServices(ctx context.Context, businessID string) ([]*domain.Service, error) {
	query := `SELECT id, business_id, name, COALESCE(description, ''),
					 duration_minutes, price, capacity, is_active, created_at, updated_at
			  FROM services
			  WHERE business_id = $1 AND is_active
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var res []*domain.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func scanService(row rowScanner) (*domain.Service, error) {
	var (
		s        domain.Service
		price    sql.NullFloat64
		capacity sql.NullInt64
	)
	err := row.Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.Description,
		&s.DurationMinutes, &price, &capacity, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if price.Valid {
		s.Price = &price.Float64
	}
	if capacity.Valid {
		n := int(capacity.Int64)
		s.Capacity = &n
	}
	return &s, nil
}
