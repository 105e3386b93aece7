package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

const customerColumns = `id, COALESCE(telegram_id, ''), COALESCE(whatsapp_number, ''),
	COALESCE(full_name, ''), COALESCE(phone_number, ''), conversation_state,
	created_at, updated_at`

type CustomerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCustomerRepo(db *dbpg.DB) *CustomerRepository {
	return &CustomerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) GetOrCreateByIdentity(ctx context.Context, identity domain.ChannelIdentity) (*domain.Customer, error) {
	idColumn := "telegram_id"
	if identity.Kind == domain.ChannelWhatsApp {
		idColumn = "whatsapp_number"
	}

	c, err := r.getByIdentity(ctx, idColumn, identity.ExternalID)
	if err == nil {
		if identity.FullName != "" && c.FullName == "" {
			c.FullName = identity.FullName
			if err = r.setFullName(ctx, c.ID, identity.FullName); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	c = &domain.Customer{
		ID:        uuid.New().String(),
		FullName:  identity.FullName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	switch identity.Kind {
	case domain.ChannelWhatsApp:
		c.WhatsAppNumber = identity.ExternalID
	default:
		c.TelegramID = identity.ExternalID
	}

	if err = r.insert(ctx, c, idColumn, identity.ExternalID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost a first-contact race; the row exists now.
			return r.getByIdentity(ctx, idColumn, identity.ExternalID)
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) getByIdentity(ctx context.Context, idColumn, externalID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + idColumn + ` = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, externalID)
	if err != nil {
		return nil, fmt.Errorf("get customer by identity: %w", err)
	}

	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) insert(ctx context.Context, c *domain.Customer, idColumn, externalID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	state, err := json.Marshal(c.State)
	if err != nil {
		return fmt.Errorf("encode conversation state: %w", err)
	}

	query := `INSERT INTO customers (id, ` + idColumn + `, full_name, conversation_state, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, query, c.ID, externalID, nullIfEmpty(c.FullName), state, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return tx.Commit()
}

func (r *CustomerRepository) setFullName(ctx context.Context, id, fullName string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE customers SET full_name = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, fullName); err != nil {
		return fmt.Errorf("set customer name: %w", err)
	}
	return tx.Commit()
}

func (r *CustomerRepository) SaveState(ctx context.Context, customerID string, state domain.ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode conversation state: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE customers SET conversation_state = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, customerID, raw); err != nil {
		return fmt.Errorf("save conversation state: %w", err)
	}
	return tx.Commit()
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		c        domain.Customer
		stateRaw []byte
	)
	err := row.Scan(
		&c.ID, &c.TelegramID, &c.WhatsAppNumber,
		&c.FullName, &c.PhoneNumber, &stateRaw,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(stateRaw) > 0 {
		if err = json.Unmarshal(stateRaw, &c.State); err != nil {
			return nil, fmt.Errorf("decode conversation state: %w", err)
		}
	}
	return &c, nil
}
