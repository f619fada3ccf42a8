package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sorteix/rifa-engine/internal/core/domain"
)

type RaffleRepository interface {
	// Create inserts the raffle and bulk-creates its tickets [1..TotalNumbers]
	// in one transaction.
	Create(ctx context.Context, raffle *domain.Raffle) error
	GetByID(ctx context.Context, raffleID uuid.UUID) (*domain.Raffle, error)
	List(ctx context.Context) ([]domain.Raffle, error)
	UpdateStatus(ctx context.Context, raffleID uuid.UUID, status domain.RaffleStatus) error
}

type TicketRepository interface {
	// PickRandom returns up to quantity distinct currently-available numbers,
	// drawn uniformly. Read-only; the authoritative check happens in Reserve.
	PickRandom(ctx context.Context, raffleID uuid.UUID, quantity int) ([]int, error)

	// FilterAvailable returns the subset of numbers that are currently
	// available. Numbers outside the raffle's range are simply absent from
	// the result.
	FilterAvailable(ctx context.Context, raffleID uuid.UUID, numbers []int) ([]int, error)

	// Reserve atomically transitions the whole set available->reserved.
	// On conflict it returns *domain.NumberUnavailableError naming exactly
	// the numbers that lost the race, and no ticket is left reserved.
	Reserve(ctx context.Context, raffleID uuid.UUID, numbers []int, holderID, reservationID uuid.UUID, expiresAt time.Time) error

	// Confirm atomically transitions the whole set reserved->paid for the
	// given holder and reservation. Already-paid tickets under the same
	// holder/reservation count as confirmed (idempotent re-delivery).
	Confirm(ctx context.Context, raffleID uuid.UUID, numbers []int, holderID, reservationID uuid.UUID) error

	// Release returns all numbers still reserved under the given holder and
	// reservation to the pool, reporting how many were released.
	Release(ctx context.Context, raffleID, holderID, reservationID uuid.UUID) (int64, error)

	// ReleaseExpired returns every reserved ticket whose deadline has passed
	// to the pool. A nil raffleID sweeps all raffles. It reports the number
	// of tickets released and the distinct raffles that were touched.
	ReleaseExpired(ctx context.Context, raffleID *uuid.UUID) (int64, []uuid.UUID, error)

	CountByState(ctx context.Context, raffleID uuid.UUID) (*domain.SalesReport, error)

	// HolderNumbers lists the paid numbers owned by a holder, ascending.
	HolderNumbers(ctx context.Context, raffleID, holderID uuid.UUID) ([]int, error)
}
