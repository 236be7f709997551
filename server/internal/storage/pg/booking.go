package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"
	"github.com/shareit-dev/shareit/shared/domain"
	internal_errors "github.com/shareit-dev/shareit/shared/errors"
)

const bookingSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       ` + itemColumns + `,
	       u.id, u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func scanBooking(row rowScanner) (domain.Booking, error) {
	var b domain.Booking
	var requestId sql.NullInt64
	err := row.Scan(
		&b.Id, &b.Start, &b.End, &b.Status,
		&b.Item.Id, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerId, &requestId,
		&b.Booker.Id, &b.Booker.Name, &b.Booker.Email,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	if requestId.Valid {
		b.Item.RequestId = &requestId.Int64
	}
	return b, nil
}

// =========================================================================
// Public Methods (satisfy the service.BookingStorage interface)
// =========================================================================

// SaveBooking locks the item row, lets check veto the booking, rejects periods
// overlapping an approved booking and inserts a WAITING booking, all in one transaction.
func (s *Storage) SaveBooking(ctx context.Context, data domain.BookingCreationData, check func(domain.Item) error) (domain.Booking, error) {
	var booking domain.Booking
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		item, err := s.item(ctx, tx, data.ItemId, true)
		if err != nil {
			return err
		}
		if err := check(item); err != nil {
			return err
		}
		if err := s.checkNoApprovedOverlap(ctx, tx, data.ItemId, data.Start, data.End, 0); err != nil {
			return err
		}

		var id domain.BookingId
		err = tx.QueryRowContext(ctx, `
			INSERT INTO bookings(start_date, end_date, item_id, booker_id, status)
			VALUES($1, $2, $3, $4, $5) RETURNING id`,
			data.Start, data.End, data.ItemId, data.BookerId, domain.StatusWaiting,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}
		booking, err = s.booking(ctx, tx, id)
		return err
	})
	return booking, err
}

func (s *Storage) Booking(ctx context.Context, id domain.BookingId) (domain.Booking, error) {
	return s.booking(ctx, s.db, id)
}

// UpdateBookingStatus sets the status under a lock on the booked item. check sees
// the booking before the change; approvals are re-checked against other approved bookings.
func (s *Storage) UpdateBookingStatus(ctx context.Context, id domain.BookingId, status domain.BookingStatus, check func(domain.Booking) error) (domain.Booking, error) {
	var booking domain.Booking
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		current, err := s.booking(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := s.item(ctx, tx, current.Item.Id, true); err != nil {
			return err
		}
		// re-read under the lock, a concurrent update may have committed meanwhile
		current, err = s.booking(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := check(current); err != nil {
			return err
		}
		if status == domain.StatusApproved {
			if err := s.checkNoApprovedOverlap(ctx, tx, current.Item.Id, current.Start, current.End, current.Id); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx, "UPDATE bookings SET status = $2 WHERE id = $1", id, status); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		current.Status = status
		booking = current
		return nil
	})
	return booking, err
}

// BookingsByBooker lists the booker's bookings in the given state, newest start first.
func (s *Storage) BookingsByBooker(ctx context.Context, bookerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error) {
	return s.bookingsBy(ctx, "b.booker_id", bookerId, state, now, page)
}

// BookingsByOwner lists bookings of the owner's items in the given state, newest start first.
func (s *Storage) BookingsByOwner(ctx context.Context, ownerId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error) {
	return s.bookingsBy(ctx, "i.owner_id", ownerId, state, now, page)
}

func (s *Storage) OwnerHasBookings(ctx context.Context, ownerId domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings b JOIN items i ON i.id = b.item_id WHERE i.owner_id = $1
		)`, ownerId).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check owner bookings: %w", err)
	}
	return exists, nil
}

// LastAndNextBookings finds, per item, the latest non-rejected booking that ended
// before now and the earliest one that starts after now.
func (s *Storage) LastAndNextBookings(ctx context.Context, ids []domain.ItemId, now domain.DateTime) (last, next map[domain.ItemId]domain.BookingShort, err error) {
	last = make(map[domain.ItemId]domain.BookingShort)
	next = make(map[domain.ItemId]domain.BookingShort)
	if len(ids) == 0 {
		return last, next, nil
	}

	if err := s.nearestBookings(ctx, last, `
		SELECT DISTINCT ON (b.item_id) b.item_id, b.id, b.booker_id
		FROM bookings b
		WHERE b.item_id = ANY($1) AND b.status <> 'REJECTED' AND b.end_date < $2
		ORDER BY b.item_id, b.end_date DESC, b.id DESC`, ids, now); err != nil {
		return nil, nil, fmt.Errorf("failed to query last bookings: %w", err)
	}
	if err := s.nearestBookings(ctx, next, `
		SELECT DISTINCT ON (b.item_id) b.item_id, b.id, b.booker_id
		FROM bookings b
		WHERE b.item_id = ANY($1) AND b.status <> 'REJECTED' AND b.start_date > $2
		ORDER BY b.item_id, b.start_date, b.id`, ids, now); err != nil {
		return nil, nil, fmt.Errorf("failed to query next bookings: %w", err)
	}
	return last, next, nil
}

// HasFinishedBooking reports whether the booker had an approved booking of the item that ended before now.
func (s *Storage) HasFinishedBooking(ctx context.Context, bookerId domain.UserId, itemId domain.ItemId, now domain.DateTime) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND status = 'APPROVED' AND end_date < $3
		)`, bookerId, itemId, now).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check finished bookings: %w", err)
	}
	return exists, nil
}

// =========================================================================
// Internal Methods
// =========================================================================

func (s *Storage) booking(ctx context.Context, q Querier, id domain.BookingId) (domain.Booking, error) {
	booking, err := scanBooking(q.QueryRowContext(ctx, bookingSelect+" WHERE b.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Booking{}, internal_errors.NotFound("Booking with id %d not found", id)
		}
		return domain.Booking{}, fmt.Errorf("failed to query booking: %w", err)
	}
	return booking, nil
}

// overlap is inclusive on both ends; exclude skips the booking being approved.
func (s *Storage) checkNoApprovedOverlap(ctx context.Context, q Querier, itemId domain.ItemId, start, end domain.DateTime, exclude domain.BookingId) error {
	var overlaps bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND status = 'APPROVED' AND id <> $4
			  AND start_date <= $3 AND end_date >= $2
		)`, itemId, start, end, exclude).Scan(&overlaps)
	if err != nil {
		return fmt.Errorf("failed to check booking overlap: %w", err)
	}
	if overlaps {
		return internal_errors.BadRequest("Item %d is already booked for the requested period", itemId)
	}
	return nil
}

// stateFilter returns the WHERE fragment for state, using placeholders from $next on.
func stateFilter(state domain.BookingState, now domain.DateTime, next int) (string, []any, error) {
	p := "$" + strconv.Itoa(next)
	switch state {
	case domain.StateAll:
		return "", nil, nil
	case domain.StatePast:
		return " AND b.end_date < " + p, []any{now}, nil
	case domain.StateCurrent:
		return " AND b.start_date < " + p + " AND b.end_date > " + p, []any{now}, nil
	case domain.StateFuture:
		return " AND b.start_date > " + p, []any{now}, nil
	case domain.StateWaiting:
		return " AND b.status = " + p, []any{domain.StatusWaiting}, nil
	case domain.StateRejected:
		return " AND b.status = " + p, []any{domain.StatusRejected}, nil
	default:
		return "", nil, internal_errors.BadRequest("Unknown state: %s", state)
	}
}

func (s *Storage) bookingsBy(ctx context.Context, column string, userId domain.UserId, state domain.BookingState, now domain.DateTime, page domain.Page) ([]domain.Booking, error) {
	filter, filterArgs, err := stateFilter(state, now, 4)
	if err != nil {
		return nil, err
	}
	args := append([]any{userId, page.Limit(), page.Offset()}, filterArgs...)
	rows, err := s.db.QueryContext(ctx, bookingSelect+`
		WHERE `+column+` = $1`+filter+`
		ORDER BY b.start_date DESC, b.id DESC
		LIMIT $2 OFFSET $3`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	return bookings, nil
}

func (s *Storage) nearestBookings(ctx context.Context, out map[domain.ItemId]domain.BookingShort, query string, ids []domain.ItemId, now domain.DateTime) error {
	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids), now)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var itemId domain.ItemId
		var short domain.BookingShort
		if err := rows.Scan(&itemId, &short.Id, &short.BookerId); err != nil {
			return err
		}
		out[itemId] = short
	}
	return rows.Err()
}
