package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type ConversationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewConversationRepo(db *dbpg.DB) *ConversationRepository {
	return &ConversationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ConversationRepository) Recent(ctx context.Context, customerID, businessID string, limit int) ([]domain.ChatMessage, error) {
	query := `SELECT role, content
			  FROM conversation_history
			  WHERE customer_id = $1 AND business_id = $2
			  ORDER BY created_at DESC
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID, businessID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}
	defer rows.Close()

	var res []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err = rows.Scan(&m.Role, &m.Content); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		res = append(res, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Query returns newest first; callers want chronological order.
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res, nil
}

func (r *ConversationRepository) Append(ctx context.Context, customerID, businessID string, role domain.MessageRole, content string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO conversation_history (id, customer_id, business_id, role, content, created_at)
			  VALUES ($1, $2, $3, $4, $5, now())`
	_, err = tx.ExecContext(ctx, query, uuid.New().String(), customerID, businessID, role, content)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return tx.Commit()
}

func (r *ConversationRepository) TrimToLimit(ctx context.Context, customerID, businessID string, limit int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM conversation_history
			  WHERE customer_id = $1 AND business_id = $2
			    AND id NOT IN (
					SELECT id FROM conversation_history
					WHERE customer_id = $1 AND business_id = $2
					ORDER BY created_at DESC
					LIMIT $3
			    )`
	if _, err = tx.ExecContext(ctx, query, customerID, businessID, limit); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return tx.Commit()
}
