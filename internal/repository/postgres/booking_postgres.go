package postgres

import (
	"context"
	"database/sql"
	"time"

	"startconnect/internal/model"
	"startconnect/internal/repository"
)

// BookingPostgres is a PostgreSQL implementation of repository.BookingRepository.
type BookingPostgres struct {
	db *sql.DB
}

// NewBookingPostgres creates a new BookingPostgres repository.
func NewBookingPostgres(db *sql.DB) *BookingPostgres {
	return &BookingPostgres{db: db}
}

var _ repository.BookingRepository = (*BookingPostgres)(nil)

const bookingColumns = `id, user_id, center_id, sport, start_time, end_time, status, note, created_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.CenterID, &b.Sport, &b.Start, &b.End, &b.Status, &b.Note, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
	defer rows.Close()
	items := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BookingPostgres) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	const q = `
		INSERT INTO bookings (id, user_id, center_id, sport, start_time, end_time, status, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns
	out, err := scanBooking(executor(ctx, r.db).QueryRowContext(ctx, q,
		b.ID, b.UserID, b.CenterID, b.Sport, b.Start, b.End, b.Status, b.Note, b.CreatedAt))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *BookingPostgres) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(executor(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *BookingPostgres) ListByUser(ctx context.Context, userID string, from *time.Time) ([]model.Booking, error) {
	q := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`
	args := []any{userID}
	if from != nil {
		q += ` AND end_time > $2 AND status = 'confirmed' ORDER BY start_time ASC`
		args = append(args, *from)
	} else {
		q += ` ORDER BY start_time DESC`
	}
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func (r *BookingPostgres) CountOverlapping(ctx context.Context, centerID string, start, end time.Time) (int, error) {
	const q = `
		SELECT COUNT(*) FROM bookings
		WHERE center_id = $1 AND status = 'confirmed' AND start_time < $3 AND end_time > $2
	`
	return countRows(ctx, executor(ctx, r.db), q, centerID, start, end)
}

func (r *BookingPostgres) UserHasOverlap(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND status = 'confirmed' AND start_time < $3 AND end_time > $2
		)
	`
	var exists bool
	if err := executor(ctx, r.db).QueryRowContext(ctx, q, userID, start, end).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BookingPostgres) ListActiveByCenter(ctx context.Context, centerID string, from, to time.Time) ([]model.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE center_id = $1 AND status = 'confirmed' AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
	`
	rows, err := executor(ctx, r.db).QueryContext(ctx, q, centerID, from, to)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func (r *BookingPostgres) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, `UPDATE bookings SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *BookingPostgres) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	res, err := executor(ctx, r.db).ExecContext(ctx,
		`UPDATE bookings SET status = 'completed' WHERE status = 'confirmed' AND end_time <= $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *BookingPostgres) Count(ctx context.Context) (int, error) {
	return countRows(ctx, executor(ctx, r.db), `SELECT COUNT(*) FROM bookings`)
}
