package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sorteix/rifa-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCreateRaffle_BulkCreatesTickets(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewRaffleRepository(db)

	raffle := &domain.Raffle{
		ID:           uuid.New(),
		Title:        "Moto Zero KM",
		TotalNumbers: 100,
		TicketPrice:  10.0,
		Status:       domain.RaffleActive,
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO raffles").
		WithArgs(raffle.ID, raffle.Title, raffle.TotalNumbers, raffle.TicketPrice, raffle.Status, raffle.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tickets").
		WithArgs(raffle.ID, raffle.TotalNumbers).
		WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectCommit()

	err = repo.Create(context.Background(), raffle)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewRaffleRepository(db)

	raffleID := uuid.New()
	mock.ExpectQuery("SELECT id, title, total_numbers").
		WithArgs(raffleID).
		WillReturnError(sql.ErrNoRows)

	raffle, err := repo.GetByID(context.Background(), raffleID)

	assert.Nil(t, raffle)
	assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
}

func TestGetByID_RejectsUnknownStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewRaffleRepository(db)

	raffleID := uuid.New()
	mock.ExpectQuery("SELECT id, title, total_numbers").
		WithArgs(raffleID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "total_numbers", "ticket_price", "status", "created_at"}).
			AddRow(raffleID.String(), "x", 10, 1.0, "weird", time.Now()))

	raffle, err := repo.GetByID(context.Background(), raffleID)

	assert.Nil(t, raffle)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	repo := NewRaffleRepository(db)

	raffleID := uuid.New()
	mock.ExpectExec("UPDATE raffles").
		WithArgs(domain.RafflePaused, raffleID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateStatus(context.Background(), raffleID, domain.RafflePaused)

	assert.ErrorIs(t, err, domain.ErrRaffleNotFound)
}
