package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wager-arena/config"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Reel presentation timing, milliseconds per reel stop.
const (
	slotRevealDelayMS = 2000
	slotTurboDelayMS  = 300
)

// SlotsServiceImpl implements ports.SlotsService. A spin is a single
// atomic wager: stake in, grid drawn, paylines scored, and payout
// credited in one transaction.
type SlotsServiceImpl struct {
	playerRepo   ports.PlayerRepository
	bankrollRepo ports.BankrollRepository
	roundRepo    ports.RoundRepository
	catalogRepo  ports.CatalogRepository
	betLogRepo   ports.BetLogRepository
	journalRepo  ports.JournalRepository
	betCache     ports.BetCache
	fairness     ports.FairnessService
	transactor   ports.DBTransactor
	games        config.GamesConfig
	log          zerolog.Logger
}

// NewSlotsService creates a new SlotsServiceImpl.
func NewSlotsService(
	playerRepo ports.PlayerRepository,
	bankrollRepo ports.BankrollRepository,
	roundRepo ports.RoundRepository,
	catalogRepo ports.CatalogRepository,
	betLogRepo ports.BetLogRepository,
	journalRepo ports.JournalRepository,
	betCache ports.BetCache,
	fairness ports.FairnessService,
	transactor ports.DBTransactor,
	games config.GamesConfig,
	log zerolog.Logger,
) *SlotsServiceImpl {
	return &SlotsServiceImpl{
		playerRepo:   playerRepo,
		bankrollRepo: bankrollRepo,
		roundRepo:    roundRepo,
		catalogRepo:  catalogRepo,
		betLogRepo:   betLogRepo,
		journalRepo:  journalRepo,
		betCache:     betCache,
		fairness:     fairness,
		transactor:   transactor,
		games:        games,
		log:          log,
	}
}

// Spin places the stake, draws the grid, and settles in one pass.
func (s *SlotsServiceImpl) Spin(ctx context.Context, req ports.SpinRequest) (*ports.SpinResult, error) {
	if req.Stake <= 0 {
		return nil, apperror.ErrInvalidStake()
	}

	betKey := domain.BuildBetKey(req.PlayerID, domain.GameSlots, req.ReferenceID)

	// Layer 1: Redis idempotency check
	cached, err := s.betCache.Get(ctx, betKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", betKey).Msg("redis bet check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalSpinResult(cached)
	}

	// Layer 2: DB idempotency check
	betLog, err := s.betLogRepo.Get(ctx, betKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db bet check: %w", err))
	}
	if betLog != nil {
		return unmarshalSpinResult(betLog.ResponseJSON)
	}

	symbols, err := s.catalogRepo.ListSlotSymbols(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list slot symbols: %w", err))
	}
	if len(symbols) == 0 {
		return nil, apperror.InternalError(fmt.Errorf("slot symbol catalog is empty"))
	}
	symbols = domain.NormalizeSlotWeights(symbols)

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & get player (always the first lock)
	player, err := s.playerRepo.GetByIDForUpdate(ctx, dbTx, req.PlayerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}
	if player.Balance < req.Stake {
		return nil, apperror.ErrInsufficientBalance()
	}

	// Lock & check the house bankroll
	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}
	if !bankroll.PayoutEnabled {
		return nil, apperror.ErrPayoutsDisabled()
	}
	if !bankroll.CoversExposure(req.Stake, s.games.RiskMargin) {
		return nil, apperror.ErrLiquidityRefusal()
	}

	commitment, err := s.fairness.NewCommitment()
	if err != nil {
		return nil, err
	}
	stream := s.fairness.Stream(commitment.ServerSeed, req.ClientSeed)
	_, grid := DrawSlotGrid(stream, symbols)

	catalog := make(map[string]domain.SlotSymbol, len(symbols))
	for _, sym := range symbols {
		catalog[sym.ID] = sym
	}
	lineWins, rawTotal := domain.EvaluateSlotGrid(grid, req.Stake, catalog)

	player.Balance -= req.Stake
	bankroll.ReserveStake(req.Stake)

	payout := rawTotal
	forced := false
	if payout > 0 {
		payout = bankroll.AuthorizePayout(rawTotal)
		forced = payout < rawTotal
		player.Balance += payout
		bankroll.Settle(payout)
	}

	now := time.Now().UTC()
	state := domain.RoundStateLost
	if payout > 0 {
		state = domain.RoundStateWon
	}
	catalogJSON, err := json.Marshal(symbols)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal catalog: %w", err))
	}
	round := &domain.Round{
		ID:             uuid.New(),
		PlayerID:       req.PlayerID,
		Game:           domain.GameSlots,
		State:          state,
		Stake:          req.Stake,
		ServerSeed:     commitment.ServerSeed,
		ServerSeedHash: commitment.ServerSeedHash,
		ClientSeed:     req.ClientSeed,
		Grid:           grid,
		Catalog:        catalogJSON,
		Payout:         payout,
		Forced:         forced,
		ReferenceID:    req.ReferenceID,
		CreatedAt:      now,
		SettledAt:      &now,
	}

	if err := s.playerRepo.UpdateBalance(ctx, dbTx, player.ID, player.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
	}
	if err := s.roundRepo.Create(ctx, dbTx, round); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create round: %w", err))
	}
	if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
		ID:             uuid.New(),
		RoundID:        &round.ID,
		Game:           domain.GameSlots,
		Direction:      domain.LedgerReserve,
		Amount:         req.Stake,
		LiquidityAfter: bankroll.AvailableLiquidity + payout,
		CreatedAt:      now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}
	if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
		ID:             uuid.New(),
		RoundID:        &round.ID,
		Game:           domain.GameSlots,
		Direction:      domain.LedgerSettle,
		Amount:         payout,
		LiquidityAfter: bankroll.AvailableLiquidity,
		CreatedAt:      now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}

	delay := slotRevealDelayMS
	if req.Turbo {
		delay = slotTurboDelayMS
	}
	result := &ports.SpinResult{
		RoundID:        round.ID,
		Grid:           grid,
		LineWins:       lineWins,
		TotalPayout:    payout,
		BigWin:         domain.IsBigWin(rawTotal, req.Stake),
		Balance:        player.Balance,
		AutoPlayOK:     bankroll.PayoutEnabled && player.Balance >= req.Stake,
		RevealDelayMS:  delay,
		ServerSeedHash: commitment.ServerSeedHash,
		ServerSeed:     commitment.ServerSeed,
	}
	respJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
	}
	if err := s.betLogRepo.Create(ctx, dbTx, &domain.BetLog{
		Key:          betKey,
		RoundID:      round.ID,
		ResponseJSON: respJSON,
		CreatedAt:    now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save bet log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-process: cache in Redis (best-effort)
	if err := s.betCache.Set(ctx, betKey, respJSON, betCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("key", betKey).Msg("failed to cache bet in redis")
	}

	s.log.Info().
		Str("round_id", round.ID.String()).
		Str("player_id", req.PlayerID.String()).
		Int64("stake", req.Stake).
		Int64("payout", payout).
		Bool("forced", forced).
		Msg("slot spin settled")

	return result, nil
}

// Symbols returns the catalog with engine-derived weights, for client
// paytable display.
func (s *SlotsServiceImpl) Symbols(ctx context.Context) ([]domain.SlotSymbol, error) {
	symbols, err := s.catalogRepo.ListSlotSymbols(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list slot symbols: %w", err))
	}
	return domain.NormalizeSlotWeights(symbols), nil
}

func unmarshalSpinResult(data []byte) (*ports.SpinResult, error) {
	result := &ports.SpinResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached spin: %w", err))
	}
	result.Idempotent = true
	return result, nil
}
