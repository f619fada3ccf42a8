package domain

import "github.com/google/uuid"

// SalesReport aggregates ticket counts by state for one raffle.
type SalesReport struct {
	RaffleID     uuid.UUID `json:"raffle_id"`
	TotalNumbers int       `json:"total_numbers"`
	Available    int       `json:"available"`
	Reserved     int       `json:"reserved"`
	Paid         int       `json:"paid"`
}
