package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TicketState string

const (
	TicketAvailable TicketState = "available"
	TicketReserved  TicketState = "reserved"
	TicketPaid      TicketState = "paid"
)

// ParseTicketState rejects unknown states coming from the store boundary.
func ParseTicketState(s string) (TicketState, error) {
	switch TicketState(s) {
	case TicketAvailable, TicketReserved, TicketPaid:
		return TicketState(s), nil
	default:
		return "", fmt.Errorf("unknown ticket state %q", s)
	}
}

// Ticket is one number within a raffle. Identity is (RaffleID, Number).
// HolderID and ReservationID are set while the ticket is reserved or paid;
// ReservedAt/ExpiresAt only while reserved; PaidAt only once paid.
type Ticket struct {
	RaffleID      uuid.UUID
	Number        int
	State         TicketState
	HolderID      *uuid.UUID
	ReservationID *uuid.UUID
	ReservedAt    *time.Time
	ExpiresAt     *time.Time
	PaidAt        *time.Time
}

func (t *Ticket) IsAvailable() bool {
	return t.State == TicketAvailable
}

func (t *Ticket) IsHeldBy(holderID, reservationID uuid.UUID) bool {
	return t.HolderID != nil && *t.HolderID == holderID &&
		t.ReservationID != nil && *t.ReservationID == reservationID
}
