package domain

import "time"

// HistoryLimit bounds stored conversation history per (customer, business).
// Older entries are pruned, never summarized.
const HistoryLimit = 20

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type ConversationMessage struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	BusinessID string      `json:"business_id"`
	Role       MessageRole `json:"role"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"created_at"`
}

// ChatMessage is the wire shape handed to the AI collaborator.
type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}
