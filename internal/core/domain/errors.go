package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRaffleNotFound        = errors.New("raffle not found")
	ErrRaffleNotSellable     = errors.New("raffle is not open for sales")
	ErrInsufficientInventory = errors.New("not enough available numbers")
	ErrReservationMismatch   = errors.New("holder or reservation does not match")
	ErrReservationExpired    = errors.New("reservation expired")
	ErrStoreUnavailable      = errors.New("ticket store unavailable")
)

// NumberUnavailableError names exactly the numbers that were not available
// at selection or reservation time.
type NumberUnavailableError struct {
	Numbers []int
}

func (e *NumberUnavailableError) Error() string {
	return fmt.Sprintf("numbers not available: %v", e.Numbers)
}

// StoreError wraps a persistence failure so callers can match it with
// errors.Is(err, ErrStoreUnavailable).
func StoreError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
