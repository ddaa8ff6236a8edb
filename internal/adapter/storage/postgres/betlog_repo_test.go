package postgres

import (
	"context"
	"testing"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetLogRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetLogRepo(mock)
	log := &domain.BetLog{
		Key:          "player-id:MINES:REF-001",
		RoundID:      uuid.New(),
		ResponseJSON: []byte(`{"state":"PLAYING"}`),
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bet_logs").
		WithArgs(log.Key, log.RoundID, log.ResponseJSON, log.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetLogRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetLogRepo(mock)
	roundID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM bet_logs WHERE key").
		WithArgs("player-id:MINES:REF-001").
		WillReturnRows(pgxmock.NewRows([]string{"key", "round_id", "response_json", "created_at"}).
			AddRow("player-id:MINES:REF-001", roundID, []byte(`{"state":"PLAYING"}`), now))

	result, err := repo.Get(context.Background(), "player-id:MINES:REF-001")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, roundID, result.RoundID)
	assert.Equal(t, []byte(`{"state":"PLAYING"}`), result.ResponseJSON)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBetLogRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBetLogRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM bet_logs WHERE key").
		WithArgs("nonexistent-key").
		WillReturnRows(pgxmock.NewRows([]string{"key", "round_id", "response_json", "created_at"}))

	result, err := repo.Get(context.Background(), "nonexistent-key")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
