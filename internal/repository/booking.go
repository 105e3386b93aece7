package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

const bookingColumns = `id, business_id, customer_id, COALESCE(service_id, ''),
	to_char(booking_date, 'YYYY-MM-DD'), to_char(booking_time, 'HH24:MI'),
	party_size, status, booking_reference, COALESCE(special_requests, ''),
	reminder_24h_job_id, reminder_1h_job_id, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// overlapCount counts confirmed bookings on business+date whose occupied
// interval intersects [time, time+duration) under half-open semantics.
// excludeID skips the booking being rescheduled.
func overlapCount(ctx context.Context, tx *sql.Tx, businessID, date, timeOfDay string, durationMinutes int, excludeID string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM bookings b
			  LEFT JOIN services s ON s.id = b.service_id
			  WHERE b.business_id = $1
			    AND b.booking_date = $2::date
			    AND b.status = $3
			    AND ($4 = '' OR b.id <> $4)
			    AND b.booking_time < ($5::time + make_interval(mins => $6))
			    AND (b.booking_time + make_interval(mins => COALESCE(s.duration_minutes, $7))) > $5::time`

	var n int
	err := tx.QueryRowContext(
		ctx, query, businessID, date,
		domain.BookingStatusConfirmed, excludeID, timeOfDay, durationMinutes,
		domain.FallbackDurationMinutes,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count overlaps: %w", err)
	}
	return n, nil
}

// lockBusiness takes the per-business write lock for the duration of the
// transaction so concurrent check-then-insert sequences serialize.
func lockBusiness(ctx context.Context, tx *sql.Tx, businessID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM businesses WHERE id = $1 FOR UPDATE`, businessID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBusinessNotFound
		}
		return fmt.Errorf("lock business: %w", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, serviceDurationMinutes int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockBusiness(ctx, tx, b.BusinessID); err != nil {
		return err
	}

	conflicts, err := overlapCount(ctx, tx, b.BusinessID, b.BookingDate, b.BookingTime, serviceDurationMinutes, "")
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrSlotTaken
	}

	query := `INSERT INTO bookings (id, business_id, customer_id, service_id,
				booking_date, booking_time, party_size, status,
				booking_reference, special_requests, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8, $9, $10, $11, $12)`
	// A draft can confirm without a service; '' would trip the services FK.
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.BusinessID, b.CustomerID, nullIfEmpty(b.ServiceID),
		b.BookingDate, b.BookingTime, b.PartySize, b.Status,
		b.Reference, nullIfEmpty(b.SpecialRequests), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.Constraint, "reference") {
				return domain.ErrReferenceTaken
			}
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) Reschedule(ctx context.Context, b *domain.Booking, serviceDurationMinutes int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockBusiness(ctx, tx, b.BusinessID); err != nil {
		return err
	}

	conflicts, err := overlapCount(ctx, tx, b.BusinessID, b.BookingDate, b.BookingTime, serviceDurationMinutes, b.ID)
	if err != nil {
		return err
	}
	if conflicts > 0 {
		return domain.ErrSlotTaken
	}

	query := `UPDATE bookings
			  SET booking_date = $2::date, booking_time = $3::time, updated_at = now()
			  WHERE id = $1 AND status = $4`
	res, err := tx.ExecContext(ctx, query, b.ID, b.BookingDate, b.BookingTime, domain.BookingStatusConfirmed)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = upper($1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking by reference: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) BookedSlots(ctx context.Context, businessID, date string) ([]domain.BookedSlot, error) {
	query := `SELECT to_char(b.booking_time, 'HH24:MI'), COALESCE(s.duration_minutes, $4)
			  FROM bookings b
			  LEFT JOIN services s ON s.id = b.service_id
			  WHERE b.business_id = $1
			    AND b.booking_date = $2::date
			    AND b.status = $3
			  ORDER BY b.booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID, date,
		domain.BookingStatusConfirmed, domain.FallbackDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}
	defer rows.Close()

	var res []domain.BookedSlot
	for rows.Next() {
		var s domain.BookedSlot
		if err = rows.Scan(&s.Time, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("scan booked slot: %w", err)
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`
	res, err := tx.ExecContext(
		ctx, query, id, domain.BookingStatusCancelled,
		pq.Array([]domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusConfirmed}),
	)
	if err != nil {
		return false, fmt.Errorf("cancel booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *BookingRepository) SetReminderJobs(ctx context.Context, id string, job24h, job1h *string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET reminder_24h_job_id = $2, reminder_1h_job_id = $3, updated_at = now()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, job24h, job1h); err != nil {
		return fmt.Errorf("set reminder jobs: %w", err)
	}
	return tx.Commit()
}

func (r *BookingRepository) ListUpcomingByCustomer(ctx context.Context, customerID, businessID, fromDate string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE customer_id = $1 AND business_id = $2
			    AND status = $3 AND booking_date >= $4::date
			  ORDER BY booking_date, booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, customerID, businessID, domain.BookingStatusConfirmed, fromDate)
	if err != nil {
		return nil, fmt.Errorf("list bookings by customer: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListUpcomingConfirmed(ctx context.Context, fromDate string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1 AND booking_date >= $2::date
			  ORDER BY booking_date, booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, fromDate)
	if err != nil {
		return nil, fmt.Errorf("list upcoming bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByBusinessDate(ctx context.Context, businessID, date string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE business_id = $1 AND booking_date = $2::date
			  ORDER BY booking_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, businessID, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by business: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) CompleteFinished(ctx context.Context) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings b
			  SET status = $2, updated_at = now()
			  WHERE b.status = $1
			    AND (b.booking_date + b.booking_time + make_interval(mins =>
					COALESCE((SELECT s.duration_minutes FROM services s WHERE s.id = b.service_id), $3))) < now()`
	res, err := tx.ExecContext(ctx, query, domain.BookingStatusConfirmed, domain.BookingStatusCompleted,
		domain.FallbackDurationMinutes)
	if err != nil {
		return 0, fmt.Errorf("complete finished bookings: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("bookings rows affected: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return rows, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		partySize sql.NullInt64
		job24h    sql.NullString
		job1h     sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.BusinessID, &b.CustomerID, &b.ServiceID,
		&b.BookingDate, &b.BookingTime, &partySize, &b.Status,
		&b.Reference, &b.SpecialRequests, &job24h, &job1h,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if partySize.Valid {
		n := int(partySize.Int64)
		b.PartySize = &n
	}
	if job24h.Valid {
		b.Reminder24hJobID = &job24h.String
	}
	if job1h.Valid {
		b.Reminder1hJobID = &job1h.String
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
