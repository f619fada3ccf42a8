package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sorteix/rifa-engine/internal/core/domain"
)

type RaffleRepository struct {
	db *sql.DB
}

func NewRaffleRepository(db *sql.DB) *RaffleRepository {
	return &RaffleRepository{db: db}
}

// Create inserts the raffle and bulk-creates one available ticket per number
// in the same transaction, so the range is fixed from the start.
func (r *RaffleRepository) Create(ctx context.Context, raffle *domain.Raffle) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.StoreError(err)
	}
	defer tx.Rollback()

	queryRaffle := `
	INSERT INTO raffles (id, title, total_numbers, ticket_price, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.ExecContext(ctx, queryRaffle,
		raffle.ID, raffle.Title, raffle.TotalNumbers, raffle.TicketPrice, raffle.Status, raffle.CreatedAt)
	if err != nil {
		return domain.StoreError(fmt.Errorf("insert raffle: %w", err))
	}

	queryTickets := `
	INSERT INTO tickets (raffle_id, number, state)
	SELECT $1, n, 'available' FROM generate_series(1, $2) AS n
	`

	_, err = tx.ExecContext(ctx, queryTickets, raffle.ID, raffle.TotalNumbers)
	if err != nil {
		return domain.StoreError(fmt.Errorf("insert tickets: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return domain.StoreError(err)
	}

	return nil
}

func (r *RaffleRepository) GetByID(ctx context.Context, raffleID uuid.UUID) (*domain.Raffle, error) {
	query := `
	SELECT id, title, total_numbers, ticket_price, status, created_at
	FROM raffles
	WHERE id = $1
	`

	var raffle domain.Raffle
	var status string

	err := r.db.QueryRowContext(ctx, query, raffleID).Scan(
		&raffle.ID,
		&raffle.Title,
		&raffle.TotalNumbers,
		&raffle.TicketPrice,
		&status,
		&raffle.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrRaffleNotFound
		}
		return nil, domain.StoreError(err)
	}

	raffle.Status, err = domain.ParseRaffleStatus(status)
	if err != nil {
		return nil, domain.StoreError(err)
	}

	return &raffle, nil
}

func (r *RaffleRepository) List(ctx context.Context) ([]domain.Raffle, error) {
	query := `
	SELECT id, title, total_numbers, ticket_price, status, created_at
	FROM raffles
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.StoreError(err)
	}
	defer rows.Close()

	var raffles []domain.Raffle
	for rows.Next() {
		var raffle domain.Raffle
		var status string
		if err := rows.Scan(
			&raffle.ID,
			&raffle.Title,
			&raffle.TotalNumbers,
			&raffle.TicketPrice,
			&status,
			&raffle.CreatedAt,
		); err != nil {
			return nil, domain.StoreError(err)
		}

		raffle.Status, err = domain.ParseRaffleStatus(status)
		if err != nil {
			return nil, domain.StoreError(err)
		}

		raffles = append(raffles, raffle)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError(err)
	}

	return raffles, nil
}

func (r *RaffleRepository) UpdateStatus(ctx context.Context, raffleID uuid.UUID, status domain.RaffleStatus) error {
	query := `
	UPDATE raffles
	SET status = $1
	WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, raffleID)
	if err != nil {
		return domain.StoreError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.StoreError(err)
	}

	if affected == 0 {
		return domain.ErrRaffleNotFound
	}

	return nil
}
