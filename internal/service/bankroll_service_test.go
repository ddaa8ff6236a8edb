package service

import (
	"context"
	"testing"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bankrollTestDeps struct {
	svc          *BankrollServiceImpl
	playerRepo   *mocks.MockPlayerRepository
	bankrollRepo *mocks.MockBankrollRepository
	catalogRepo  *mocks.MockCatalogRepository
	journalRepo  *mocks.MockJournalRepository
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupBankrollService(t *testing.T) *bankrollTestDeps {
	ctrl := gomock.NewController(t)
	d := &bankrollTestDeps{
		playerRepo:   mocks.NewMockPlayerRepository(ctrl),
		bankrollRepo: mocks.NewMockBankrollRepository(ctrl),
		catalogRepo:  mocks.NewMockCatalogRepository(ctrl),
		journalRepo:  mocks.NewMockJournalRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewBankrollService(
		d.playerRepo, d.bankrollRepo, d.catalogRepo, d.journalRepo,
		d.transactor, zerolog.Nop(),
	)
	return d
}

func TestBankrollService_Status(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	entries := []domain.LedgerEntry{{ID: uuid.New(), Direction: domain.LedgerTopup, Amount: 5000}}
	d.bankrollRepo.EXPECT().Get(ctx).Return(testBankroll(), nil)
	d.journalRepo.EXPECT().ListRecent(ctx, recentLedgerEntries).Return(entries, nil)

	status, err := d.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), status.AvailableLiquidity)
	assert.True(t, status.PayoutEnabled)
	assert.Equal(t, int64(50000), status.MaxSinglePayout)
	assert.Len(t, status.RecentEntries, 1)
}

func TestBankrollService_SetPayoutEnabled(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, b *domain.Bankroll) error {
			assert.False(t, b.PayoutEnabled)
			return nil
		})

	require.NoError(t, d.svc.SetPayoutEnabled(ctx, false))
}

func TestBankrollService_Topup_JournalsInjection(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, entry *domain.LedgerEntry) error {
			assert.Equal(t, domain.LedgerTopup, entry.Direction)
			assert.Equal(t, int64(25000), entry.Amount)
			assert.Equal(t, int64(125000), entry.LiquidityAfter)
			assert.Nil(t, entry.RoundID)
			return nil
		})
	// Topup returns a fresh Status read.
	d.bankrollRepo.EXPECT().Get(ctx).Return(&domain.Bankroll{
		AvailableLiquidity: 125000, PayoutEnabled: true, MaxSinglePayout: 50000,
	}, nil)
	d.journalRepo.EXPECT().ListRecent(ctx, recentLedgerEntries).Return(nil, nil)

	status, err := d.svc.Topup(ctx, 25000)
	require.NoError(t, err)
	assert.Equal(t, int64(125000), status.AvailableLiquidity)
}

func TestBankrollService_Topup_RejectsNonPositive(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Topup(context.Background(), 0)
	assertAppError(t, err, "BET_002")
}

func TestBankrollService_SetMaxSinglePayout(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, b *domain.Bankroll) error {
			assert.Equal(t, int64(75000), b.MaxSinglePayout)
			return nil
		})

	require.NoError(t, d.svc.SetMaxSinglePayout(ctx, 75000))

	err := d.svc.SetMaxSinglePayout(ctx, -1)
	assertAppError(t, err, "BET_002")
}

func TestBankrollService_CreatePlayer(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.playerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Player) error {
		assert.NotEqual(t, uuid.Nil, p.ID)
		assert.Equal(t, int64(5000), p.Balance)
		return nil
	})

	player, err := d.svc.CreatePlayer(ctx, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), player.Balance)
}

func TestBankrollService_CreatePlayer_NegativeBalance(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreatePlayer(context.Background(), -1)
	assertAppError(t, err, "BET_002")
}

func TestBankrollService_CreditPlayer(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 200}, nil)
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(1200)).Return(nil)

	player, err := d.svc.CreditPlayer(ctx, playerID, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), player.Balance)
}

func TestBankrollService_CreditPlayer_UnknownPlayer(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(nil, nil)

	_, err := d.svc.CreditPlayer(ctx, playerID, 1000)
	assertAppError(t, err, "SYS_002")
}

func TestBankrollService_Balance(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	d.playerRepo.EXPECT().GetByID(ctx, playerID).Return(&domain.Player{
		ID: playerID, Balance: 4200, Points: 17, Tickets: 2, UpdatedAt: time.Now().UTC(),
	}, nil)

	player, err := d.svc.Balance(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), player.Balance)
	assert.Equal(t, int64(17), player.Points)
	assert.Equal(t, int64(2), player.Tickets)
}

func TestBankrollService_ReplaceSlotSymbols_DerivesWeights(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.catalogRepo.EXPECT().ReplaceSlotSymbols(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, symbols []domain.SlotSymbol) error {
			require.Len(t, symbols, 2)
			// Stored frequencies are ignored; weights come from multipliers.
			assert.Equal(t, 50, symbols[0].Frequency)
			assert.Equal(t, 1, symbols[1].Frequency)
			return nil
		})

	err := d.svc.ReplaceSlotSymbols(ctx, []domain.SlotSymbol{
		{ID: "cherry", Multiplier: 2, Frequency: 999},
		{ID: "seven", Multiplier: 100, Frequency: 999},
	})
	require.NoError(t, err)
}

func TestBankrollService_ReplaceSlotSymbols_Validation(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	err := d.svc.ReplaceSlotSymbols(ctx, nil)
	assertAppError(t, err, "BET_002")

	err = d.svc.ReplaceSlotSymbols(ctx, []domain.SlotSymbol{{ID: "cherry", Multiplier: 0}})
	assertAppError(t, err, "BET_002")

	err = d.svc.ReplaceSlotSymbols(ctx, []domain.SlotSymbol{
		{ID: "cherry", Multiplier: 2},
		{ID: "cherry", Multiplier: 5},
	})
	assertAppError(t, err, "BET_002")
}

func TestBankrollService_ReplaceWheelSegments_ResetsRemaining(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.catalogRepo.EXPECT().ReplaceWheelSegments(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, segments []domain.WheelSegment) error {
			assert.Equal(t, 10, segments[0].Remaining)
			assert.Equal(t, 0, segments[1].Remaining)
			return nil
		})

	err := d.svc.ReplaceWheelSegments(ctx, []domain.WheelSegment{
		{ID: 1, PrizeType: domain.PrizeFreeTicket, Value: 1, DailyLimit: 10, Remaining: 3},
		{ID: 2, PrizeType: domain.PrizeNothing},
	})
	require.NoError(t, err)
}

func TestBankrollService_ReplaceWheelSegments_Validation(t *testing.T) {
	d := setupBankrollService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	err := d.svc.ReplaceWheelSegments(ctx, nil)
	assertAppError(t, err, "BET_002")

	err = d.svc.ReplaceWheelSegments(ctx, []domain.WheelSegment{{ID: 1, PrizeType: "JACKPOT"}})
	assertAppError(t, err, "BET_002")

	err = d.svc.ReplaceWheelSegments(ctx, []domain.WheelSegment{{ID: 1, PrizeType: domain.PrizeCash, Value: 0}})
	assertAppError(t, err, "BET_002")
}
