package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sorteix/rifa-engine/internal/core/domain"
)

type TicketRepository struct {
	db *sql.DB
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) PickRandom(ctx context.Context, raffleID uuid.UUID, quantity int) ([]int, error) {
	query := `
	SELECT number FROM tickets
	WHERE raffle_id = $1 AND state = 'available'
	ORDER BY random()
	LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, raffleID, quantity)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	return scanNumbers(rows)
}

func (r *TicketRepository) FilterAvailable(ctx context.Context, raffleID uuid.UUID, numbers []int) ([]int, error) {
	query := `
	SELECT number FROM tickets
	WHERE raffle_id = $1 AND number = ANY($2) AND state = 'available'
	ORDER BY number
	`

	rows, err := r.db.QueryContext(ctx, query, raffleID, pq.Array(numbers))
	if err != nil {
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	return scanNumbers(rows)
}

// Reserve transitions the whole set available->reserved in one conditional
// UPDATE. The row count tells us whether every number was still available;
// anything short of the full set is rolled back and reported with exactly
// the numbers that lost the race.
func (r *TicketRepository) Reserve(ctx context.Context, raffleID uuid.UUID, numbers []int, holderID, reservationID uuid.UUID, expiresAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoreError(err)
	}
	defer tx.Rollback()

	query := `
	UPDATE tickets
	SET state = 'reserved',
		holder_id = $1,
		reservation_id = $2,
		reserved_at = $3,
		expires_at = $4
	WHERE raffle_id = $5
	  AND number = ANY($6)
	  AND state = 'available'
	`

	result, err := tx.ExecContext(ctx, query,
		holderID, reservationID, time.Now().UTC(), expiresAt.UTC(), raffleID, pq.Array(numbers))
	if err != nil {
		return domain.StoreError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.StoreError(err)
	}

	if affected != int64(len(numbers)) {
		lost, err := r.lostNumbers(ctx, tx, raffleID, reservationID, numbers)
		if err != nil {
			return err
		}
		return &domain.NumberUnavailableError{Numbers: lost}
	}

	if err := tx.Commit(); err != nil {
		return domain.StoreError(err)
	}

	return nil
}

// lostNumbers runs inside the reservation transaction before rollback: rows
// the UPDATE did claim now carry our reservation_id, so the losers are the
// requested numbers without it.
func (r *TicketRepository) lostNumbers(ctx context.Context, tx *sql.Tx, raffleID, reservationID uuid.UUID, numbers []int) ([]int, error) {
	query := `
	SELECT number FROM tickets
	WHERE raffle_id = $1 AND number = ANY($2)
	  AND reservation_id = $3 AND state = 'reserved'
	`

	rows, err := tx.QueryContext(ctx, query, raffleID, pq.Array(numbers), reservationID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	won := make(map[int]bool)
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, domain.StoreError(err)
		}
		won[n] = true
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError(err)
	}

	var lost []int
	for _, n := range numbers {
		if !won[n] {
			lost = append(lost, n)
		}
	}
	return lost, nil
}

// Confirm transitions the whole set reserved->paid for the holder and
// reservation that own it. A shortfall is classified inside the same
// transaction: every ticket already paid under the same holder/reservation
// is an idempotent re-delivery, an expired matching hold is reported as
// such, anything else is a mismatch.
func (r *TicketRepository) Confirm(ctx context.Context, raffleID uuid.UUID, numbers []int, holderID, reservationID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoreError(err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	query := `
	UPDATE tickets
	SET state = 'paid',
		paid_at = $1,
		reserved_at = NULL,
		expires_at = NULL
	WHERE raffle_id = $2
	  AND number = ANY($3)
	  AND state = 'reserved'
	  AND holder_id = $4
	  AND reservation_id = $5
	  AND expires_at > $1
	`

	result, err := tx.ExecContext(ctx, query, now, raffleID, pq.Array(numbers), holderID, reservationID)
	if err != nil {
		return domain.StoreError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.StoreError(err)
	}

	if affected == int64(len(numbers)) {
		return r.commitFullReservation(ctx, tx, raffleID, reservationID)
	}

	paid, sawExpired, err := r.classifyConfirm(ctx, tx, raffleID, holderID, reservationID, numbers)
	if err != nil {
		return err
	}

	if paid == len(numbers) {
		// Every ticket is paid under this holder/reservation: a repeated
		// payment notification. Nothing to change.
		return r.commitFullReservation(ctx, tx, raffleID, reservationID)
	}

	if sawExpired {
		return domain.ErrReservationExpired
	}
	return domain.ErrReservationMismatch
}

// commitFullReservation rejects confirmation of a subset of a reservation:
// a confirm call must name the same set that was reserved together, so no
// ticket may remain reserved under the reservation being confirmed.
func (r *TicketRepository) commitFullReservation(ctx context.Context, tx *sql.Tx, raffleID, reservationID uuid.UUID) error {
	var leftover int
	query := `
	SELECT COUNT(*) FROM tickets
	WHERE raffle_id = $1 AND reservation_id = $2 AND state = 'reserved'
	`

	if err := tx.QueryRowContext(ctx, query, raffleID, reservationID).Scan(&leftover); err != nil {
		return domain.StoreError(err)
	}
	if leftover > 0 {
		return domain.ErrReservationMismatch
	}

	if err := tx.Commit(); err != nil {
		return domain.StoreError(err)
	}
	return nil
}

// classifyConfirm inspects the requested set after a short confirm UPDATE.
// Rows updated in this transaction are already paid and matching, so a full
// paid count means success either way.
func (r *TicketRepository) classifyConfirm(ctx context.Context, tx *sql.Tx, raffleID, holderID, reservationID uuid.UUID, numbers []int) (paid int, sawExpired bool, err error) {
	query := `
	SELECT state, holder_id, reservation_id, expires_at FROM tickets
	WHERE raffle_id = $1 AND number = ANY($2)
	`

	rows, err := tx.QueryContext(ctx, query, raffleID, pq.Array(numbers))
	if err != nil {
		return 0, false, domain.StoreError(err)
	}
	defer rows.Close()

	now := time.Now().UTC()
	for rows.Next() {
		var state string
		var holder, reservation sql.NullString
		var expiresAt sql.NullTime
		if err := rows.Scan(&state, &holder, &reservation, &expiresAt); err != nil {
			return 0, false, domain.StoreError(err)
		}

		matching := holder.Valid && holder.String == holderID.String() &&
			reservation.Valid && reservation.String == reservationID.String()

		switch domain.TicketState(state) {
		case domain.TicketPaid:
			if matching {
				paid++
			}
		case domain.TicketReserved:
			if matching && expiresAt.Valid && !expiresAt.Time.After(now) {
				sawExpired = true
			}
		}
	}
	if err := rows.Err(); err != nil {
		return 0, false, domain.StoreError(err)
	}

	return paid, sawExpired, nil
}

func (r *TicketRepository) Release(ctx context.Context, raffleID, holderID, reservationID uuid.UUID) (int64, error) {
	query := `
	UPDATE tickets
	SET state = 'available',
		holder_id = NULL,
		reservation_id = NULL,
		reserved_at = NULL,
		expires_at = NULL
	WHERE raffle_id = $1
	  AND holder_id = $2
	  AND reservation_id = $3
	  AND state = 'reserved'
	`

	result, err := r.db.ExecContext(ctx, query, raffleID, holderID, reservationID)
	if err != nil {
		return 0, domain.StoreError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, domain.StoreError(err)
	}

	return affected, nil
}

// ReleaseExpired is the sweep primitive: one conditional UPDATE whose
// predicate still checks state = 'reserved', so a ticket confirmed a moment
// earlier is never touched.
func (r *TicketRepository) ReleaseExpired(ctx context.Context, raffleID *uuid.UUID) (int64, []uuid.UUID, error) {
	query := `
	UPDATE tickets
	SET state = 'available',
		holder_id = NULL,
		reservation_id = NULL,
		reserved_at = NULL,
		expires_at = NULL
	WHERE state = 'reserved' AND expires_at < $1
	`

	args := []interface{}{time.Now().UTC()}
	if raffleID != nil {
		query += ` AND raffle_id = $2`
		args = append(args, *raffleID)
	}
	query += ` RETURNING raffle_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, nil, domain.StoreError(err)
	}
	defer rows.Close()

	var released int64
	seen := make(map[uuid.UUID]bool)
	var raffles []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return 0, nil, domain.StoreError(err)
		}
		released++
		if !seen[id] {
			seen[id] = true
			raffles = append(raffles, id)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, nil, domain.StoreError(err)
	}

	return released, raffles, nil
}

func (r *TicketRepository) CountByState(ctx context.Context, raffleID uuid.UUID) (*domain.SalesReport, error) {
	query := `
	SELECT
		COUNT(*) FILTER (WHERE state = 'available'),
		COUNT(*) FILTER (WHERE state = 'reserved'),
		COUNT(*) FILTER (WHERE state = 'paid'),
		COUNT(*)
	FROM tickets
	WHERE raffle_id = $1
	`

	report := &domain.SalesReport{RaffleID: raffleID}
	err := r.db.QueryRowContext(ctx, query, raffleID).Scan(
		&report.Available,
		&report.Reserved,
		&report.Paid,
		&report.TotalNumbers,
	)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	return report, nil
}

func (r *TicketRepository) HolderNumbers(ctx context.Context, raffleID, holderID uuid.UUID) ([]int, error) {
	query := `
	SELECT number FROM tickets
	WHERE raffle_id = $1 AND holder_id = $2 AND state = 'paid'
	ORDER BY number
	`

	rows, err := r.db.QueryContext(ctx, query, raffleID, holderID)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	return scanNumbers(rows)
}

func scanNumbers(rows *sql.Rows) ([]int, error) {
	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, domain.StoreError(err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError(err)
	}
	return numbers, nil
}
