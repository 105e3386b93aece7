package ports

import "github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"

// ReminderScheduler registers single-shot reminder jobs for a booking.
// A nil job id means that reminder window was already in the past.
type ReminderScheduler interface {
	Schedule(p domain.ReminderPayload) (job24h, job1h *string)
	// Cancel is best-effort: ids for jobs that already fired or never existed
	// are ignored.
	Cancel(job24h, job1h *string)
}
