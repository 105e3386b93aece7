//go:build integration

package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

// Runs against a real Postgres: go test -tags integration ./internal/repository/
// with TEST_DATABASE_DSN pointing at a disposable database.
func openTestDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { db.Master.Close() })

	require.NoError(t, db.Master.PingContext(context.Background()))
	require.NoError(t, goose.Up(db.Master, "../../migrations"))
	return db
}

type bookingFixture struct {
	businessID string
	customerID string
	serviceID  string
}

func seedBookingFixture(t *testing.T, db *dbpg.DB) bookingFixture {
	t.Helper()
	ctx := context.Background()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	f := bookingFixture{
		businessID: "itest-biz-" + suffix,
		customerID: "itest-cust-" + suffix,
		serviceID:  "itest-svc-" + suffix,
	}

	_, err := db.Master.ExecContext(ctx,
		`INSERT INTO businesses (id, name, type, working_hours, timezone)
		 VALUES ($1, 'Mama''s Kitchen', 'restaurant', '{"mon": ["09:00", "17:00"]}', 'Africa/Accra')`,
		f.businessID)
	require.NoError(t, err)

	_, err = db.Master.ExecContext(ctx,
		`INSERT INTO customers (id, telegram_id, full_name) VALUES ($1, $2, 'Ama')`,
		f.customerID, "itest-tg-"+suffix)
	require.NoError(t, err)

	_, err = db.Master.ExecContext(ctx,
		`INSERT INTO services (id, business_id, name, duration_minutes) VALUES ($1, $2, 'Dinner table', 60)`,
		f.serviceID, f.businessID)
	require.NoError(t, err)

	t.Cleanup(func() {
		// Bookings and services cascade off the business row.
		db.Master.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, f.businessID)
		db.Master.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, f.customerID)
	})
	return f
}

func (f bookingFixture) newBooking(tag string) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:          f.businessID + "-b" + tag,
		BusinessID:  f.businessID,
		CustomerID:  f.customerID,
		ServiceID:   f.serviceID,
		BookingDate: "2030-05-20",
		BookingTime: "19:00",
		Status:      domain.BookingStatusConfirmed,
		Reference:   fmt.Sprintf("RST-20300520-%s%s", tag, f.businessID[len(f.businessID)-3:]),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBookingRepository_Create_ConcurrentSameSlot(t *testing.T) {
	db := openTestDB(t)
	f := seedBookingFixture(t, db)
	repo := NewBookingRepo(db)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(context.Background(), f.newBooking(fmt.Sprintf("C%d", i)), 60)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, n-1, lost)

	slots, err := repo.BookedSlots(context.Background(), f.businessID, "2030-05-20")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.BookedSlot{Time: "19:00", DurationMinutes: 60}, slots[0])
}

func TestBookingRepository_Create_WithoutService(t *testing.T) {
	db := openTestDB(t)
	f := seedBookingFixture(t, db)
	repo := NewBookingRepo(db)

	b := f.newBooking("N1")
	b.ServiceID = ""
	require.NoError(t, repo.Create(context.Background(), b, domain.FallbackDurationMinutes))

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ServiceID)

	// A serviceless booking still occupies its slot at the fallback duration.
	rival := f.newBooking("N2")
	rival.ServiceID = ""
	rival.BookingTime = "19:15"
	err = repo.Create(context.Background(), rival, domain.FallbackDurationMinutes)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	slots, err := repo.BookedSlots(context.Background(), f.businessID, "2030-05-20")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domain.FallbackDurationMinutes, slots[0].DurationMinutes)
}
