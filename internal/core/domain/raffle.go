package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RaffleStatus string

const (
	RaffleDraft     RaffleStatus = "draft"
	RaffleActive    RaffleStatus = "active"
	RafflePaused    RaffleStatus = "paused"
	RaffleFinished  RaffleStatus = "finished"
	RaffleCancelled RaffleStatus = "cancelled"
)

func ParseRaffleStatus(s string) (RaffleStatus, error) {
	switch RaffleStatus(s) {
	case RaffleDraft, RaffleActive, RafflePaused, RaffleFinished, RaffleCancelled:
		return RaffleStatus(s), nil
	default:
		return "", fmt.Errorf("unknown raffle status %q", s)
	}
}

// Raffle is a sellable pool of numbered tickets [1..TotalNumbers].
// The range is fixed at creation; tickets are bulk-created with it.
type Raffle struct {
	ID           uuid.UUID
	Title        string
	TotalNumbers int
	TicketPrice  float64
	Status       RaffleStatus
	CreatedAt    time.Time
}

// IsSellable reports whether reservations and confirmations are accepted.
func (r *Raffle) IsSellable() bool {
	return r.Status == RaffleActive
}

// ContainsNumber checks a number against the raffle's fixed range.
func (r *Raffle) ContainsNumber(n int) bool {
	return n >= 1 && n <= r.TotalNumbers
}
