package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/sorteix/rifa-engine/internal/adapter/handler"
	"github.com/sorteix/rifa-engine/internal/core/domain"
	"github.com/sorteix/rifa-engine/internal/core/ports/mocks"
	"github.com/sorteix/rifa-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.RaffleRepository, *mocks.TicketRepository, redismock.ClientMock) {
	gin.SetMode(gin.TestMode)

	mockRaffleRepo := mocks.NewRaffleRepository(t)
	mockTicketRepo := mocks.NewTicketRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	svc := services.NewRaffleService(mockRaffleRepo, mockTicketRepo, cache, 15*time.Minute)

	router := gin.New()
	handler.NewRaffleHandler(svc).RegisterRoutes(router)

	return router, mockRaffleRepo, mockTicketRepo, mockRedis
}

func activeRaffle(id uuid.UUID) *domain.Raffle {
	return &domain.Raffle{
		ID:           id,
		Title:        "Moto Zero KM",
		TotalNumbers: 100,
		TicketPrice:  10.0,
		Status:       domain.RaffleActive,
		CreatedAt:    time.Now().UTC(),
	}
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReserveNumbers_Created(t *testing.T) {
	router, mockRaffleRepo, mockTicketRepo, mockRedis := setupRouter(t)

	raffleID := uuid.New()
	holderID := uuid.New()
	reservationID := uuid.New()

	mockRaffleRepo.On("GetByID", mock.Anything, raffleID).Return(activeRaffle(raffleID), nil)
	mockTicketRepo.On("Reserve", mock.Anything, raffleID, []int{5, 6, 7}, holderID, reservationID, mock.AnythingOfType("time.Time")).Return(nil)
	mockRedis.ExpectDel("raffle:report:" + raffleID.String()).SetVal(1)

	w := postJSON(router, "/raffles/"+raffleID.String()+"/reservations", services.ReserveNumbersRequest{
		Numbers:       []int{5, 6, 7},
		HolderID:      holderID.String(),
		ReservationID: reservationID.String(),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp services.ReserveNumbersResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{5, 6, 7}, resp.Numbers)
	assert.NotEmpty(t, resp.ExpiresAt)
}

func TestReserveNumbers_ConflictListsLosers(t *testing.T) {
	router, mockRaffleRepo, mockTicketRepo, _ := setupRouter(t)

	raffleID := uuid.New()

	mockRaffleRepo.On("GetByID", mock.Anything, raffleID).Return(activeRaffle(raffleID), nil)
	mockTicketRepo.On("Reserve", mock.Anything, raffleID, []int{1, 2, 3}, mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).
		Return(&domain.NumberUnavailableError{Numbers: []int{2}})

	w := postJSON(router, "/raffles/"+raffleID.String()+"/reservations", services.ReserveNumbersRequest{
		Numbers:       []int{1, 2, 3},
		HolderID:      uuid.New().String(),
		ReservationID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Unavailable []int `json:"unavailable"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{2}, resp.Unavailable)
}

func TestConfirmPayment_Expired(t *testing.T) {
	router, mockRaffleRepo, mockTicketRepo, _ := setupRouter(t)

	raffleID := uuid.New()

	mockRaffleRepo.On("GetByID", mock.Anything, raffleID).Return(activeRaffle(raffleID), nil)
	mockTicketRepo.On("Confirm", mock.Anything, raffleID, []int{4}, mock.Anything, mock.Anything).
		Return(domain.ErrReservationExpired)

	w := postJSON(router, "/raffles/"+raffleID.String()+"/payments/confirm", services.ConfirmPaymentRequest{
		Numbers:       []int{4},
		HolderID:      uuid.New().String(),
		ReservationID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestGetRaffle_NotFound(t *testing.T) {
	router, mockRaffleRepo, _, _ := setupRouter(t)

	raffleID := uuid.New()
	mockRaffleRepo.On("GetByID", mock.Anything, raffleID).Return(nil, domain.ErrRaffleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/raffles/"+raffleID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRaffle_InvalidID(t *testing.T) {
	router, _, _, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/raffles/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSweep_ReturnsReleasedCount(t *testing.T) {
	router, _, mockTicketRepo, mockRedis := setupRouter(t)

	raffleID := uuid.New()
	mockTicketRepo.On("ReleaseExpired", mock.Anything, (*uuid.UUID)(nil)).
		Return(int64(4), []uuid.UUID{raffleID}, nil)
	mockRedis.ExpectDel("raffle:report:" + raffleID.String()).SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Released int64 `json:"released"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.Released)
}

func TestGetHolderNumbers(t *testing.T) {
	router, _, mockTicketRepo, _ := setupRouter(t)

	raffleID := uuid.New()
	holderID := uuid.New()

	mockTicketRepo.On("HolderNumbers", mock.Anything, raffleID, holderID).Return([]int{3, 17}, nil)

	req := httptest.NewRequest(http.MethodGet, "/raffles/"+raffleID.String()+"/holders/"+holderID.String()+"/numbers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Numbers []int `json:"numbers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []int{3, 17}, resp.Numbers)
}
