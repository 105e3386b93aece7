package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

// Window names the lead time of a reminder relative to the booking start.
type Window string

const (
	Window24h Window = "24h"
	Window1h  Window = "1h"
)

func (w Window) offset() time.Duration {
	if w == Window24h {
		return 24 * time.Hour
	}
	return time.Hour
}

// NotifyFunc receives a fired reminder. It runs on the timer goroutine and
// must not block for long.
type NotifyFunc func(window Window, p domain.ReminderPayload)

// Scheduler keeps single-shot reminder timers in memory. Jobs do not survive
// a restart; the reservation service re-registers them from the database at
// boot.
type Scheduler struct {
	notify NotifyFunc
	logger logger.Logger
	loc    *time.Location
	now    func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
}

type Option func(*Scheduler)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLocation sets the timezone booking date/time strings are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.loc = loc }
}

func NewScheduler(notify NotifyFunc, logger logger.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		notify: notify,
		logger: logger,
		loc:    time.Local,
		now:    time.Now,
		timers: make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule registers the 24h and 1h reminders for a booking. Windows already
// in the past are skipped and reported as nil ids. Re-scheduling the same
// booking replaces its pending timers, so each window fires at most once.
func (s *Scheduler) Schedule(p domain.ReminderPayload) (job24h, job1h *string) {
	at, err := time.ParseInLocation("2006-01-02 15:04", p.Date+" "+p.Time, s.loc)
	if err != nil {
		s.logger.Error("invalid booking time for reminder",
			logger.String("booking_id", p.BookingID),
			logger.String("error", err.Error()),
		)
		return nil, nil
	}

	job24h = s.schedule(Window24h, at, p)
	job1h = s.schedule(Window1h, at, p)
	return job24h, job1h
}

func (s *Scheduler) schedule(window Window, bookingAt time.Time, p domain.ReminderPayload) *string {
	runAt := bookingAt.Add(-window.offset())
	delay := runAt.Sub(s.now())
	if delay <= 0 {
		return nil
	}

	id := fmt.Sprintf("reminder_%s_%s", window, p.BookingID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.timers[id]; ok {
		old.Stop()
	}
	s.timers[id] = time.AfterFunc(delay, func() {
		s.fire(id, window, p)
	})

	s.logger.Info("reminder scheduled",
		logger.String("job_id", id),
		logger.String("booking_id", p.BookingID),
		logger.Duration("in", delay),
	)
	return &id
}

func (s *Scheduler) fire(id string, window Window, p domain.ReminderPayload) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	s.logger.Info("reminder fired",
		logger.String("job_id", id),
		logger.String("booking_id", p.BookingID),
	)
	s.notify(window, p)
}

// Cancel stops pending reminder timers. Nil ids and ids for jobs that already
// fired are ignored.
func (s *Scheduler) Cancel(job24h, job1h *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range []*string{job24h, job1h} {
		if id == nil {
			continue
		}
		if t, ok := s.timers[*id]; ok {
			t.Stop()
			delete(s.timers, *id)
		}
	}
}

// Stop cancels every pending timer. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
