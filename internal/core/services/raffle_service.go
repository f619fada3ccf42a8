package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sorteix/rifa-engine/internal/core/domain"
	"github.com/sorteix/rifa-engine/internal/core/ports"
)

// ErrInvalidRequest marks caller input that fails validation before any
// store access.
var ErrInvalidRequest = errors.New("invalid request")

const reportCacheTTL = 30 * time.Second

type CreateRaffleRequest struct {
	Title        string  `json:"title"`
	TotalNumbers int     `json:"total_numbers"`
	TicketPrice  float64 `json:"ticket_price"`
	Status       string  `json:"status,omitempty"`
}

type SelectNumbersRequest struct {
	Quantity int   `json:"quantity,omitempty"`
	Numbers  []int `json:"numbers,omitempty"`
}

type ReserveNumbersRequest struct {
	Numbers       []int  `json:"numbers"`
	HolderID      string `json:"holder_id"`
	ReservationID string `json:"reservation_id"`
}

type ReserveNumbersResponse struct {
	Numbers   []int  `json:"numbers"`
	ExpiresAt string `json:"expires_at"`
}

type ConfirmPaymentRequest struct {
	Numbers       []int  `json:"numbers"`
	HolderID      string `json:"holder_id"`
	ReservationID string `json:"reservation_id"`
}

type RaffleService struct {
	raffleRepo ports.RaffleRepository
	ticketRepo ports.TicketRepository
	cache      *redis.Client
	ttl        time.Duration
}

// NewRaffleService wires the repositories, the report cache and the
// reservation TTL applied uniformly to every hold.
func NewRaffleService(raffleRepo ports.RaffleRepository, ticketRepo ports.TicketRepository, cache *redis.Client, ttl time.Duration) *RaffleService {
	return &RaffleService{
		raffleRepo: raffleRepo,
		ticketRepo: ticketRepo,
		cache:      cache,
		ttl:        ttl,
	}
}

func (s *RaffleService) CreateRaffle(ctx context.Context, req CreateRaffleRequest) (*domain.Raffle, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if req.TotalNumbers < 1 {
		return nil, fmt.Errorf("%w: total_numbers must be at least 1", ErrInvalidRequest)
	}
	if req.TicketPrice < 0 {
		return nil, fmt.Errorf("%w: ticket_price must not be negative", ErrInvalidRequest)
	}

	status := domain.RaffleActive
	if req.Status != "" {
		parsed, err := domain.ParseRaffleStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
		status = parsed
	}

	raffle := &domain.Raffle{
		ID:           uuid.New(),
		Title:        req.Title,
		TotalNumbers: req.TotalNumbers,
		TicketPrice:  req.TicketPrice,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.raffleRepo.Create(ctx, raffle); err != nil {
		return nil, err
	}

	return raffle, nil
}

func (s *RaffleService) GetRaffle(ctx context.Context, raffleID string) (*domain.Raffle, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return nil, err
	}
	return s.raffleRepo.GetByID(ctx, id)
}

func (s *RaffleService) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	return s.raffleRepo.List(ctx)
}

func (s *RaffleService) UpdateRaffleStatus(ctx context.Context, raffleID, status string) error {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return err
	}

	parsed, err := domain.ParseRaffleStatus(status)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return s.raffleRepo.UpdateStatus(ctx, id, parsed)
}

// SelectNumbers is the read-only planning step: it picks candidate numbers
// without mutating anything. The authoritative check happens again inside
// ReserveNumbers.
func (s *RaffleService) SelectNumbers(ctx context.Context, raffleID string, req SelectNumbersRequest) ([]int, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return nil, err
	}

	raffle, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !raffle.IsSellable() {
		return nil, domain.ErrRaffleNotSellable
	}

	if len(req.Numbers) > 0 {
		return s.selectExplicit(ctx, raffle, req.Numbers)
	}
	return s.selectRandom(ctx, raffle, req.Quantity)
}

func (s *RaffleService) selectRandom(ctx context.Context, raffle *domain.Raffle, quantity int) ([]int, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRequest)
	}

	numbers, err := s.ticketRepo.PickRandom(ctx, raffle.ID, quantity)
	if err != nil {
		return nil, err
	}
	if len(numbers) < quantity {
		return nil, domain.ErrInsufficientInventory
	}

	return numbers, nil
}

func (s *RaffleService) selectExplicit(ctx context.Context, raffle *domain.Raffle, requested []int) ([]int, error) {
	numbers, err := normalizeNumbers(requested, raffle)
	if err != nil {
		return nil, err
	}

	available, err := s.ticketRepo.FilterAvailable(ctx, raffle.ID, numbers)
	if err != nil {
		return nil, err
	}

	if len(available) < len(numbers) {
		return nil, &domain.NumberUnavailableError{Numbers: missingFrom(numbers, available)}
	}

	return numbers, nil
}

func (s *RaffleService) ReserveNumbers(ctx context.Context, raffleID string, req ReserveNumbersRequest) (*ReserveNumbersResponse, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return nil, err
	}
	holderID, err := parseID(req.HolderID, "holder id")
	if err != nil {
		return nil, err
	}
	reservationID, err := parseID(req.ReservationID, "reservation id")
	if err != nil {
		return nil, err
	}

	raffle, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !raffle.IsSellable() {
		return nil, domain.ErrRaffleNotSellable
	}

	numbers, err := normalizeNumbers(req.Numbers, raffle)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.ttl)
	if err := s.ticketRepo.Reserve(ctx, raffle.ID, numbers, holderID, reservationID, expiresAt); err != nil {
		return nil, err
	}

	s.invalidateReport(ctx, raffle.ID)

	return &ReserveNumbersResponse{
		Numbers:   numbers,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

func (s *RaffleService) ConfirmPayment(ctx context.Context, raffleID string, req ConfirmPaymentRequest) error {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return err
	}
	holderID, err := parseID(req.HolderID, "holder id")
	if err != nil {
		return err
	}
	reservationID, err := parseID(req.ReservationID, "reservation id")
	if err != nil {
		return err
	}

	raffle, err := s.raffleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !raffle.IsSellable() {
		return domain.ErrRaffleNotSellable
	}

	numbers, err := normalizeNumbers(req.Numbers, raffle)
	if err != nil {
		return err
	}

	if err := s.ticketRepo.Confirm(ctx, raffle.ID, numbers, holderID, reservationID); err != nil {
		return err
	}

	s.invalidateReport(ctx, raffle.ID)

	return nil
}

// ReleaseReservation frees all numbers still held under a reservation, for
// callers that know the payment failed and do not want to wait out the TTL.
func (s *RaffleService) ReleaseReservation(ctx context.Context, raffleID, holderID, reservationID string) (int64, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return 0, err
	}
	holder, err := parseID(holderID, "holder id")
	if err != nil {
		return 0, err
	}
	reservation, err := parseID(reservationID, "reservation id")
	if err != nil {
		return 0, err
	}

	released, err := s.ticketRepo.Release(ctx, id, holder, reservation)
	if err != nil {
		return 0, err
	}

	if released > 0 {
		s.invalidateReport(ctx, id)
	}

	return released, nil
}

// ReleaseExpired reclaims every hold past its deadline. An empty raffleID
// sweeps all raffles.
func (s *RaffleService) ReleaseExpired(ctx context.Context, raffleID string) (int64, error) {
	var filter *uuid.UUID
	if raffleID != "" {
		id, err := parseID(raffleID, "raffle id")
		if err != nil {
			return 0, err
		}
		filter = &id
	}

	released, raffles, err := s.ticketRepo.ReleaseExpired(ctx, filter)
	if err != nil {
		return 0, err
	}

	if released > 0 {
		log.Info().Int64("released", released).Int("raffles", len(raffles)).Msg("expired reservations reclaimed")
	}
	for _, id := range raffles {
		s.invalidateReport(ctx, id)
	}

	return released, nil
}

func (s *RaffleService) GetSalesReport(ctx context.Context, raffleID string) (*domain.SalesReport, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return nil, err
	}

	key := reportCacheKey(id)
	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var report domain.SalesReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	} else if err != redis.Nil {
		log.Warn().Err(err).Str("raffle_id", id.String()).Msg("report cache read failed")
	}

	report, err := s.ticketRepo.CountByState(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(report); err == nil {
		if err := s.cache.Set(ctx, key, data, reportCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Str("raffle_id", id.String()).Msg("report cache write failed")
		}
	}

	return report, nil
}

func (s *RaffleService) GetHolderNumbers(ctx context.Context, raffleID, holderID string) ([]int, error) {
	id, err := parseID(raffleID, "raffle id")
	if err != nil {
		return nil, err
	}
	holder, err := parseID(holderID, "holder id")
	if err != nil {
		return nil, err
	}

	return s.ticketRepo.HolderNumbers(ctx, id, holder)
}

func (s *RaffleService) invalidateReport(ctx context.Context, raffleID uuid.UUID) {
	if err := s.cache.Del(ctx, reportCacheKey(raffleID)).Err(); err != nil {
		log.Warn().Err(err).Str("raffle_id", raffleID.String()).Msg("report cache invalidation failed")
	}
}

func reportCacheKey(raffleID uuid.UUID) string {
	return fmt.Sprintf("raffle:report:%s", raffleID.String())
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", ErrInvalidRequest, field)
	}
	return id, nil
}

// normalizeNumbers deduplicates, sorts and bounds-checks a requested set.
// Numbers outside the raffle's range are reported as unavailable, the same
// way a lost race is.
func normalizeNumbers(requested []int, raffle *domain.Raffle) ([]int, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("%w: no numbers requested", ErrInvalidRequest)
	}

	seen := make(map[int]bool, len(requested))
	var numbers []int
	var outOfRange []int
	for _, n := range requested {
		if seen[n] {
			continue
		}
		seen[n] = true
		if !raffle.ContainsNumber(n) {
			outOfRange = append(outOfRange, n)
			continue
		}
		numbers = append(numbers, n)
	}

	if len(outOfRange) > 0 {
		return nil, &domain.NumberUnavailableError{Numbers: outOfRange}
	}

	sort.Ints(numbers)
	return numbers, nil
}

// missingFrom returns the requested numbers absent from the available set,
// preserving request order.
func missingFrom(requested, available []int) []int {
	have := make(map[int]bool, len(available))
	for _, n := range available {
		have[n] = true
	}

	var missing []int
	for _, n := range requested {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return missing
}
