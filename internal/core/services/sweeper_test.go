package services

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/sorteix/rifa-engine/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_RunsReleasePrimitive(t *testing.T) {
	mockRaffleRepo := mocks.NewRaffleRepository(t)
	mockTicketRepo := mocks.NewTicketRepository(t)
	cache, mockRedis := redismock.NewClientMock()

	svc := NewRaffleService(mockRaffleRepo, mockTicketRepo, cache, 15*time.Minute)

	raffleID := uuid.New()
	mockTicketRepo.On("ReleaseExpired", mock.Anything, (*uuid.UUID)(nil)).
		Return(int64(2), []uuid.UUID{raffleID}, nil)
	mockRedis.ExpectDel("raffle:report:" + raffleID.String()).SetVal(1)

	sweeper := NewSweeper(svc, "@every 1m")
	sweeper.sweep()

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSweeper_RejectsBadSpec(t *testing.T) {
	mockRaffleRepo := mocks.NewRaffleRepository(t)
	mockTicketRepo := mocks.NewTicketRepository(t)
	cache, _ := redismock.NewClientMock()

	svc := NewRaffleService(mockRaffleRepo, mockTicketRepo, cache, 15*time.Minute)

	sweeper := NewSweeper(svc, "not a cron spec")
	err := sweeper.Start()

	assert.Error(t, err)
	sweeper.Stop()
}
