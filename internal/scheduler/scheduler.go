package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/logger"
)

type bookingCompleter interface {
	CompleteFinished(ctx context.Context) (int64, error)
}

// Scheduler runs periodic housekeeping: bookings whose end time has passed
// are flipped to completed.
type Scheduler struct {
	cron      *cron.Cron
	completer bookingCompleter
	spec      string
	logger    logger.Logger
}

func New(completer bookingCompleter, spec string, logger logger.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		completer: completer,
		spec:      spec,
		logger:    logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return fmt.Errorf("register housekeeping job: %w", err)
	}
	s.cron.Start()

	s.logger.Info("housekeeping scheduler started",
		logger.String("spec", s.spec),
	)
	return nil
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("housekeeping scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.completer.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished bookings",
			logger.String("error", err.Error()),
		)
		return
	}
	if n > 0 {
		s.logger.Info("finished bookings completed",
			logger.Int64("count", n),
		)
	}
}
