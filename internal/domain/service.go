package domain

import "time"

// FallbackDurationMinutes is used when a booking's service cannot be resolved.
const FallbackDurationMinutes = 30

// Service is a bookable unit: a table type, a room type, an appointment type.
type Service struct {
	ID              string    `json:"id"`
	BusinessID      string    `json:"business_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           *float64  `json:"price,omitempty"`
	Capacity        *int      `json:"capacity,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
