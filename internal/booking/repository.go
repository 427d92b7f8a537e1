package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit-backend/internal/item"
)

// Repository defines methods for accessing booking data from storage.
// The pgx implementation also serves as the item package's BookingReader.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, filter StateFilter, now time.Time, limit, offset int) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, filter StateFilter, now time.Time, limit, offset int) ([]*Booking, error)

	item.BookingReader
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO bookings (start_time, end_time, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.pool.QueryRow(
		ctx, query,
		b.Start, b.End, b.ItemID, b.BookerID, b.Status,
	).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	const query = `UPDATE bookings SET status = $1 WHERE id = $2`

	ct, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	return &b, nil
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID int64, filter StateFilter, now time.Time, limit, offset int) ([]*Booking, error) {
	query := selectBookings().Where(squirrel.Eq{"b.booker_id": bookerID})
	return r.list(ctx, query, filter, now, limit, offset)
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64, filter StateFilter, now time.Time, limit, offset int) ([]*Booking, error) {
	query := selectBookings().Where(squirrel.Eq{"i.owner_id": ownerID})
	return r.list(ctx, query, filter, now, limit, offset)
}

func (r *pgxRepository) list(ctx context.Context, query squirrel.SelectBuilder, filter StateFilter, now time.Time, limit, offset int) ([]*Booking, error) {
	query = applyFilter(query, filter, now).
		OrderBy("b.start_time DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status,
			&b.ItemID, &b.ItemName, &b.ItemOwnerID,
			&b.BookerID, &b.BookerName,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

// IntervalsByItemIDs returns the non-rejected booking intervals of the given
// items, keyed by item id. Implements item.BookingReader.
func (r *pgxRepository) IntervalsByItemIDs(ctx context.Context, itemIDs []int64) (map[int64][]item.BookingInterval, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "item_id", "start_time", "end_time", "booker_id").
		From("bookings").
		Where(squirrel.Eq{"item_id": itemIDs}).
		Where(squirrel.NotEq{"status": StatusRejected}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build intervals query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking intervals failed: %w", err)
	}
	defer rows.Close()

	intervals := make(map[int64][]item.BookingInterval)
	for rows.Next() {
		var iv item.BookingInterval
		var itemID int64
		if err := rows.Scan(&iv.ID, &itemID, &iv.Start, &iv.End, &iv.BookerID); err != nil {
			return nil, fmt.Errorf("scan booking interval failed: %w", err)
		}
		intervals[itemID] = append(intervals[itemID], iv)
	}

	return intervals, rows.Err()
}

// HasFinishedApproved reports whether the user has at least one approved
// booking of the item that ended before now. Implements item.BookingReader.
func (r *pgxRepository) HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND end_time < $3 AND status = $4
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookerID, itemID, now, StatusApproved).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished bookings failed: %w", err)
	}

	return exists, nil
}

func selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.start_time", "b.end_time", "b.status",
		"b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

func applyFilter(query squirrel.SelectBuilder, filter StateFilter, now time.Time) squirrel.SelectBuilder {
	if status, ok := filter.Status(); ok {
		return query.Where(squirrel.Eq{"b.status": status})
	}

	switch {
	case filter.IsCurrent():
		return query.
			Where(squirrel.Lt{"b.start_time": now}).
			Where(squirrel.Gt{"b.end_time": now})
	case filter.IsPast():
		return query.Where(squirrel.Lt{"b.end_time": now})
	case filter.IsFuture():
		return query.Where(squirrel.Gt{"b.start_time": now})
	default:
		return query
	}
}
