package ports

import (
	"context"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type BookingRepo interface {
	// Create re-checks slot availability and inserts within one transaction.
	// Returns domain.ErrSlotTaken on overlap, domain.ErrReferenceTaken on a
	// reference collision.
	Create(ctx context.Context, b *domain.Booking, serviceDurationMinutes int) error
	// Reschedule re-checks availability for the new date/time, excluding the
	// booking itself, and updates it in the same transaction.
	Reschedule(ctx context.Context, b *domain.Booking, serviceDurationMinutes int) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	// BookedSlots returns confirmed occupancy for a business day with each
	// booking's service duration.
	BookedSlots(ctx context.Context, businessID, date string) ([]domain.BookedSlot, error)
	// Cancel flips a pending/confirmed booking to cancelled; reports whether
	// a row was actually updated.
	Cancel(ctx context.Context, id string) (bool, error)
	SetReminderJobs(ctx context.Context, id string, job24h, job1h *string) error
	ListUpcomingByCustomer(ctx context.Context, customerID, businessID, fromDate string) ([]*domain.Booking, error)
	ListUpcomingConfirmed(ctx context.Context, fromDate string) ([]*domain.Booking, error)
	ListByBusinessDate(ctx context.Context, businessID, date string) ([]*domain.Booking, error)
	// CompleteFinished flips confirmed bookings whose end time has passed to
	// completed and returns how many were updated.
	CompleteFinished(ctx context.Context) (int64, error)
}
