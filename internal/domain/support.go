package domain

import "time"

// SupportSession marks a customer as talking to staff; while one is active
// the AI path is bypassed and messages are forwarded to the business group.
type SupportSession struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	BusinessID string     `json:"business_id"`
	IsActive   bool       `json:"is_active"`
	StartedAt  time.Time  `json:"started_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
