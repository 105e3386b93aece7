package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CompletesFinished(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	s := New(completer, "@every 50ms", newTestLogger(t))

	completer.EXPECT().CompleteFinished(mock.Anything).Return(int64(2), nil)

	require.NoError(t, s.Start())
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	s := New(completer, "@every 50ms", newTestLogger(t))

	completer.EXPECT().CompleteFinished(mock.Anything).Return(int64(0), errors.New("db error"))

	require.NoError(t, s.Start())
	time.Sleep(120 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, len(completer.Calls), 1)
}

func TestScheduler_Start_BadSpec(t *testing.T) {
	completer := mocks.NewMockBookingCompleter(t)
	s := New(completer, "not a cron spec", newTestLogger(t))

	assert.Error(t, s.Start())
}
