package service

import (
	"context"
	"encoding/json"
	"testing"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type slotsTestDeps struct {
	svc          *SlotsServiceImpl
	playerRepo   *mocks.MockPlayerRepository
	bankrollRepo *mocks.MockBankrollRepository
	roundRepo    *mocks.MockRoundRepository
	catalogRepo  *mocks.MockCatalogRepository
	betLogRepo   *mocks.MockBetLogRepository
	journalRepo  *mocks.MockJournalRepository
	betCache     *mocks.MockBetCache
	fairness     *mocks.MockFairnessService
	transactor   *mocks.MockDBTransactor
	ctrl         *gomock.Controller
}

func setupSlotsService(t *testing.T) *slotsTestDeps {
	ctrl := gomock.NewController(t)
	d := &slotsTestDeps{
		playerRepo:   mocks.NewMockPlayerRepository(ctrl),
		bankrollRepo: mocks.NewMockBankrollRepository(ctrl),
		roundRepo:    mocks.NewMockRoundRepository(ctrl),
		catalogRepo:  mocks.NewMockCatalogRepository(ctrl),
		betLogRepo:   mocks.NewMockBetLogRepository(ctrl),
		journalRepo:  mocks.NewMockJournalRepository(ctrl),
		betCache:     mocks.NewMockBetCache(ctrl),
		fairness:     mocks.NewMockFairnessService(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewSlotsService(
		d.playerRepo, d.bankrollRepo, d.roundRepo, d.catalogRepo,
		d.betLogRepo, d.journalRepo, d.betCache, d.fairness,
		d.transactor, testGamesConfig(), zerolog.Nop(),
	)
	return d
}

// testSymbols: cherry weight 50, bell weight 20, seven weight 1.
func testSymbols() []domain.SlotSymbol {
	return []domain.SlotSymbol{
		{ID: "cherry", Multiplier: 2},
		{ID: "bell", Multiplier: 5},
		{ID: "seven", Multiplier: 100},
	}
}

// Draws below 50 land on cherry, 50-69 on bell, 70 on seven
// (total weight 71 after derivation).

func TestSlotsService_Spin_WinningRow(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	betKey := domain.BuildBetKey(playerID, domain.GameSlots, "SPIN-001")

	d.betCache.EXPECT().Get(ctx, betKey).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, betKey).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(testSymbols(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 1000}, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.fairness.EXPECT().NewCommitment().Return(ports.Commitment{ServerSeed: "seed", ServerSeedHash: "hash"}, nil)
	// Top row all cherry, the rest misses.
	d.fairness.EXPECT().Stream("seed", "client").Return(&fakeStream{
		ints: []int{0, 0, 0, 55, 70, 55, 55, 55, 0},
	})
	// stake 100 out, 200 payout in: 1000 - 100 + 200 = 1100
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(1100)).Return(nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.roundRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, round *domain.Round) error {
			assert.Equal(t, domain.RoundStateWon, round.State)
			assert.NotNil(t, round.SettledAt)
			assert.Equal(t, int64(200), round.Payout)
			return nil
		})
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.betLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.betCache.EXPECT().Set(ctx, betKey, gomock.Any(), betCacheTTL).Return(nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{
		PlayerID: playerID, Stake: 100, ClientSeed: "client", ReferenceID: "SPIN-001",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cherry", "cherry", "cherry", "bell", "seven", "bell", "bell", "bell", "cherry"}, result.Grid)
	require.Len(t, result.LineWins, 1)
	assert.Equal(t, 0, result.LineWins[0].Line)
	assert.Equal(t, int64(200), result.TotalPayout)
	assert.False(t, result.BigWin)
	assert.Equal(t, int64(1100), result.Balance)
	assert.Equal(t, slotRevealDelayMS, result.RevealDelayMS)
	assert.True(t, result.AutoPlayOK)
	// Spins settle instantly, so the seed is disclosed right away.
	assert.Equal(t, "seed", result.ServerSeed)
}

func TestSlotsService_Spin_Loss(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}

	d.betCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(testSymbols(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 1000}, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.fairness.EXPECT().NewCommitment().Return(ports.Commitment{ServerSeed: "seed", ServerSeedHash: "hash"}, nil)
	// Alternating symbols, no line connects.
	d.fairness.EXPECT().Stream("seed", gomock.Any()).Return(&fakeStream{
		ints: []int{0, 55, 0, 55, 70, 55, 0, 0, 55},
	})
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(900)).Return(nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.roundRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, round *domain.Round) error {
			assert.Equal(t, domain.RoundStateLost, round.State)
			return nil
		})
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.betLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.betCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), betCacheTTL).Return(nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{
		PlayerID: playerID, Stake: 100, Turbo: true, ClientSeed: "client", ReferenceID: "SPIN-002",
	})
	require.NoError(t, err)
	assert.Empty(t, result.LineWins)
	assert.Equal(t, int64(0), result.TotalPayout)
	assert.Equal(t, int64(900), result.Balance)
	assert.Equal(t, slotTurboDelayMS, result.RevealDelayMS)
	assert.True(t, result.AutoPlayOK)
}

// A losing spin that empties the wallet must tell auto-play to stop.
func TestSlotsService_Spin_AutoPlayStopsWhenBroke(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}

	d.betCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(testSymbols(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 100}, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(testBankroll(), nil)
	d.fairness.EXPECT().NewCommitment().Return(ports.Commitment{ServerSeed: "seed", ServerSeedHash: "hash"}, nil)
	d.fairness.EXPECT().Stream("seed", gomock.Any()).Return(&fakeStream{
		ints: []int{0, 55, 0, 55, 70, 55, 0, 0, 55},
	})
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(0)).Return(nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.roundRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.betLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.betCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), betCacheTTL).Return(nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{
		PlayerID: playerID, Stake: 100, ClientSeed: "client", ReferenceID: "SPIN-003",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Balance)
	assert.False(t, result.AutoPlayOK)
}

func TestSlotsService_Spin_BigWin_CappedPayout(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	bankroll := testBankroll()
	bankroll.MaxSinglePayout = 30000

	d.betCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(testSymbols(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 1000}, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(bankroll, nil)
	d.fairness.EXPECT().NewCommitment().Return(ports.Commitment{ServerSeed: "seed", ServerSeedHash: "hash"}, nil)
	// Top row of sevens: 500 x 100 = 50000 raw, capped to 30000.
	d.fairness.EXPECT().Stream("seed", gomock.Any()).Return(&fakeStream{
		ints: []int{70, 70, 70, 0, 55, 0, 55, 0, 55},
	})
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(30500)).Return(nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.roundRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.betLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.betCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), betCacheTTL).Return(nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{
		PlayerID: playerID, Stake: 500, ClientSeed: "client", ReferenceID: "SPIN-003",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), result.TotalPayout)
	assert.True(t, result.BigWin)
}

// Big-win detection looks at the uncapped line total: a tight payout
// ceiling must not demote a hundred-times hit to an ordinary win.
func TestSlotsService_Spin_BigWin_SurvivesTightCap(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	tx := &mockTx{}
	bankroll := testBankroll()
	bankroll.MaxSinglePayout = 4000 // 8x the stake, below the big-win threshold

	d.betCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(testSymbols(), nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.playerRepo.EXPECT().GetByIDForUpdate(ctx, tx, playerID).Return(&domain.Player{ID: playerID, Balance: 1000}, nil)
	d.bankrollRepo.EXPECT().GetForUpdate(ctx, tx).Return(bankroll, nil)
	d.fairness.EXPECT().NewCommitment().Return(ports.Commitment{ServerSeed: "seed", ServerSeedHash: "hash"}, nil)
	// Top row of sevens: 500 x 100 = 50000 raw, capped to 4000.
	d.fairness.EXPECT().Stream("seed", gomock.Any()).Return(&fakeStream{
		ints: []int{70, 70, 70, 0, 55, 0, 55, 0, 55},
	})
	d.playerRepo.EXPECT().UpdateBalance(ctx, tx, playerID, int64(4500)).Return(nil)
	d.bankrollRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.roundRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.journalRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil).Times(2)
	d.betLogRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.betCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), betCacheTTL).Return(nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{
		PlayerID: playerID, Stake: 500, ClientSeed: "client", ReferenceID: "SPIN-004",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), result.TotalPayout)
	assert.True(t, result.BigWin)
}

func TestSlotsService_Spin_InvalidStake(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Spin(context.Background(), ports.SpinRequest{PlayerID: uuid.New(), Stake: -5})
	assertAppError(t, err, "BET_002")
}

func TestSlotsService_Spin_EmptyCatalog(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.betCache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.betLogRepo.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return(nil, nil)

	_, err := d.svc.Spin(ctx, ports.SpinRequest{PlayerID: uuid.New(), Stake: 100, ReferenceID: "SPIN-004"})
	assertAppError(t, err, "SYS_001")
}

func TestSlotsService_Spin_IdempotentReplay(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	betKey := domain.BuildBetKey(playerID, domain.GameSlots, "SPIN-001")

	cached := &ports.SpinResult{RoundID: uuid.New(), TotalPayout: 200, Balance: 1100}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	d.betCache.EXPECT().Get(ctx, betKey).Return(raw, nil)

	result, err := d.svc.Spin(ctx, ports.SpinRequest{PlayerID: playerID, Stake: 100, ReferenceID: "SPIN-001"})
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, cached.RoundID, result.RoundID)
}

func TestSlotsService_Symbols_DerivesWeights(t *testing.T) {
	d := setupSlotsService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	// Stored frequencies are deliberately wrong; the engine overrides.
	d.catalogRepo.EXPECT().ListSlotSymbols(ctx).Return([]domain.SlotSymbol{
		{ID: "cherry", Multiplier: 2, Frequency: 999},
		{ID: "seven", Multiplier: 100, Frequency: 999},
	}, nil)

	symbols, err := d.svc.Symbols(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, symbols[0].Frequency)
	assert.Equal(t, 1, symbols[1].Frequency)
}
