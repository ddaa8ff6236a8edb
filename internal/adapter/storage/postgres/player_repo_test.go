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

func newTestPlayer() *domain.Player {
	return &domain.Player{
		ID:        uuid.New(),
		Balance:   10000,
		Points:    25,
		Tickets:   1,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func playerColumns() []string {
	return []string{"id", "balance", "points", "tickets", "last_free_spin", "created_at", "updated_at"}
}

func playerRow(p *domain.Player) *pgxmock.Rows {
	return pgxmock.NewRows(playerColumns()).AddRow(
		p.ID, p.Balance, p.Points, p.Tickets, p.LastFreeSpin, p.CreatedAt, p.UpdatedAt,
	)
}

func TestPlayerRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	p := newTestPlayer()

	mock.ExpectExec("INSERT INTO players").
		WithArgs(p.ID, p.Balance, p.Points, p.Tickets, p.LastFreeSpin, p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	p := newTestPlayer()

	mock.ExpectQuery("SELECT .+ FROM players WHERE id").
		WithArgs(p.ID).
		WillReturnRows(playerRow(p))

	result, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, p.Balance, result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM players WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(playerColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	p := newTestPlayer()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM players WHERE id .+ FOR UPDATE").
		WithArgs(p.ID).
		WillReturnRows(playerRow(p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE players SET balance").
		WithArgs(int64(4200), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, id, 4200)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE players SET balance").
		WithArgs(int64(4200), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, id, 4200)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "player not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepo_SetLastFreeSpin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlayerRepo(mock)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE players SET last_free_spin").
		WithArgs(now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.SetLastFreeSpin(context.Background(), tx, id, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
