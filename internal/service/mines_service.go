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
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const betCacheTTL = 24 * time.Hour

// MinesServiceImpl implements ports.MinesService. All mine positions
// and multipliers live server-side; clients only ever see revealed
// cells until the round settles.
type MinesServiceImpl struct {
	playerRepo   ports.PlayerRepository
	bankrollRepo ports.BankrollRepository
	roundRepo    ports.RoundRepository
	betLogRepo   ports.BetLogRepository
	journalRepo  ports.JournalRepository
	betCache     ports.BetCache
	fairness     ports.FairnessService
	transactor   ports.DBTransactor
	games        config.GamesConfig
	log          zerolog.Logger
}

// NewMinesService creates a new MinesServiceImpl.
func NewMinesService(
	playerRepo ports.PlayerRepository,
	bankrollRepo ports.BankrollRepository,
	roundRepo ports.RoundRepository,
	betLogRepo ports.BetLogRepository,
	journalRepo ports.JournalRepository,
	betCache ports.BetCache,
	fairness ports.FairnessService,
	transactor ports.DBTransactor,
	games config.GamesConfig,
	log zerolog.Logger,
) *MinesServiceImpl {
	return &MinesServiceImpl{
		playerRepo:   playerRepo,
		bankrollRepo: bankrollRepo,
		roundRepo:    roundRepo,
		betLogRepo:   betLogRepo,
		journalRepo:  journalRepo,
		betCache:     betCache,
		fairness:     fairness,
		transactor:   transactor,
		games:        games,
		log:          log,
	}
}

// Start places the stake and deals a new round.
func (s *MinesServiceImpl) Start(ctx context.Context, req ports.StartMinesRequest) (*ports.MinesRoundResult, error) {
	if req.Stake <= 0 {
		return nil, apperror.ErrInvalidStake()
	}
	if req.MineCount < domain.MinMineCount || req.MineCount > domain.MaxMineCount {
		return nil, apperror.ErrInvalidMineCount()
	}

	betKey := domain.BuildBetKey(req.PlayerID, domain.GameMines, req.ReferenceID)

	// Layer 1: Redis idempotency check
	cached, err := s.betCache.Get(ctx, betKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", betKey).Msg("redis bet check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalMinesResult(cached)
	}

	// Layer 2: DB idempotency check
	betLog, err := s.betLogRepo.Get(ctx, betKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db bet check: %w", err))
	}
	if betLog != nil {
		return unmarshalMinesResult(betLog.ResponseJSON)
	}

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

	active, err := s.roundRepo.GetActiveByPlayerForUpdate(ctx, dbTx, req.PlayerID, domain.GameMines)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check active round: %w", err))
	}
	if active != nil {
		return nil, apperror.ErrRoundInProgress()
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
	mines := stream.SampleDistinct(domain.MinesGridSize, req.MineCount)

	now := time.Now().UTC()
	round := &domain.Round{
		ID:             uuid.New(),
		PlayerID:       req.PlayerID,
		Game:           domain.GameMines,
		State:          domain.RoundStatePlaying,
		Stake:          req.Stake,
		ServerSeed:     commitment.ServerSeed,
		ServerSeedHash: commitment.ServerSeedHash,
		ClientSeed:     req.ClientSeed,
		MineCount:      req.MineCount,
		MinePositions:  mines,
		Revealed:       []int{},
		Multiplier:     1.0,
		PotentialWin:   req.Stake,
		ReferenceID:    req.ReferenceID,
		CreatedAt:      now,
	}

	player.Balance -= req.Stake
	bankroll.ReserveStake(req.Stake)

	if err := s.playerRepo.UpdateBalance(ctx, dbTx, player.ID, player.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit stake: %w", err))
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
		Game:           domain.GameMines,
		Direction:      domain.LedgerReserve,
		Amount:         req.Stake,
		LiquidityAfter: bankroll.AvailableLiquidity,
		CreatedAt:      now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}

	result := s.buildResult(round, player.Balance)
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
		Int("mines", req.MineCount).
		Msg("mines round started")

	return result, nil
}

// Reveal uncovers one cell and advances or settles the round.
func (s *MinesServiceImpl) Reveal(ctx context.Context, playerID uuid.UUID, cell int) (*ports.MinesRoundResult, error) {
	if cell < 0 || cell >= domain.MinesGridSize {
		return nil, apperror.ErrInvalidCell()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	player, err := s.playerRepo.GetByIDForUpdate(ctx, dbTx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	round, err := s.roundRepo.GetActiveByPlayerForUpdate(ctx, dbTx, playerID, domain.GameMines)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock round: %w", err))
	}
	if round == nil {
		return nil, apperror.ErrNoActiveRound()
	}

	// Re-revealing a cell is a no-op, not an error: disconnect-retry
	// must not change the round.
	if round.HasRevealed(cell) {
		result := s.buildResult(round, player.Balance)
		if err := dbTx.Commit(ctx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
		}
		return result, nil
	}

	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}

	// Maintenance: under force_settle the round ends at its current
	// value instead of accepting the reveal. A fresh round carries
	// PotentialWin equal to its stake, so the player gets the stake back.
	if !bankroll.PayoutEnabled && s.games.MaintenancePolicy == config.MaintenanceForceSettle {
		return s.settle(ctx, dbTx, player, round, bankroll, bankroll.AuthorizePayout(round.PotentialWin), domain.RoundStateWon, true)
	}

	if round.IsMine(cell) {
		round.Revealed = append(round.Revealed, cell)
		return s.settle(ctx, dbTx, player, round, bankroll, 0, domain.RoundStateLost, false)
	}

	prevWin := round.PotentialWin
	round.Revealed = append(round.Revealed, cell)
	round.Multiplier = domain.MinesMultiplier(s.games.HouseEdge, len(round.Revealed), round.MineCount)
	round.PotentialWin = domain.MinesPayout(round.Stake, round.Multiplier)

	// Payout cap reached: the reveal counts, then the round settles at
	// the cap.
	if round.PotentialWin >= bankroll.MaxSinglePayout {
		return s.settle(ctx, dbTx, player, round, bankroll, bankroll.MaxSinglePayout, domain.RoundStateWon, true)
	}

	// Liquidity exhausted: settle at the last value the pool could pay.
	if round.PotentialWin > bankroll.AvailableLiquidity {
		return s.settle(ctx, dbTx, player, round, bankroll, bankroll.AuthorizePayout(prevWin), domain.RoundStateWon, true)
	}

	// All safe cells found: automatic cash-out.
	if round.SafeCellsLeft() == 0 {
		return s.settle(ctx, dbTx, player, round, bankroll, bankroll.AuthorizePayout(round.PotentialWin), domain.RoundStateWon, true)
	}

	if err := s.roundRepo.Update(ctx, dbTx, round); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update round: %w", err))
	}
	result := s.buildResult(round, player.Balance)
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return result, nil
}

// CashOut settles the round at its current multiplier.
func (s *MinesServiceImpl) CashOut(ctx context.Context, playerID uuid.UUID) (*ports.MinesRoundResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	player, err := s.playerRepo.GetByIDForUpdate(ctx, dbTx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	round, err := s.roundRepo.GetActiveByPlayerForUpdate(ctx, dbTx, playerID, domain.GameMines)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock round: %w", err))
	}
	if round == nil {
		return nil, apperror.ErrNoActiveRound()
	}
	if !round.HasRevealedAny() {
		return nil, apperror.Validation("cash out requires at least one revealed cell")
	}

	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}

	return s.settle(ctx, dbTx, player, round, bankroll, bankroll.AuthorizePayout(round.PotentialWin), domain.RoundStateWon, false)
}

// Active returns the player's in-flight round for client resume.
func (s *MinesServiceImpl) Active(ctx context.Context, playerID uuid.UUID) (*ports.MinesRoundResult, error) {
	round, err := s.roundRepo.GetActiveByPlayer(ctx, playerID, domain.GameMines)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load round: %w", err))
	}
	if round == nil {
		return nil, apperror.ErrNoActiveRound()
	}
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}
	return s.buildResult(round, player.Balance), nil
}

// settle closes the round, credits the payout, and journals the move.
// The player and bankroll rows must already be locked in dbTx.
func (s *MinesServiceImpl) settle(
	ctx context.Context,
	dbTx pgx.Tx,
	player *domain.Player,
	round *domain.Round,
	bankroll *domain.Bankroll,
	payout int64,
	state domain.RoundState,
	forced bool,
) (*ports.MinesRoundResult, error) {
	now := time.Now().UTC()
	round.State = state
	round.Payout = payout
	round.Forced = forced
	round.SettledAt = &now

	if payout > 0 {
		player.Balance += payout
		bankroll.Settle(payout)
		if err := s.playerRepo.UpdateBalance(ctx, dbTx, player.ID, player.Balance); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit payout: %w", err))
		}
		if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
		}
	}
	if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
		ID:             uuid.New(),
		RoundID:        &round.ID,
		Game:           domain.GameMines,
		Direction:      domain.LedgerSettle,
		Amount:         payout,
		LiquidityAfter: bankroll.AvailableLiquidity,
		CreatedAt:      now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}
	if err := s.roundRepo.Update(ctx, dbTx, round); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update round: %w", err))
	}

	result := s.buildResult(round, player.Balance)
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if bankroll.Insolvent() {
		s.log.Error().Int64("liquidity", bankroll.AvailableLiquidity).Msg("bankroll liquidity went negative")
	}
	s.log.Info().
		Str("round_id", round.ID.String()).
		Str("state", string(state)).
		Int64("payout", payout).
		Bool("forced", forced).
		Msg("mines round settled")

	return result, nil
}

func (s *MinesServiceImpl) buildResult(round *domain.Round, balance int64) *ports.MinesRoundResult {
	result := &ports.MinesRoundResult{
		RoundID:        round.ID,
		State:          round.State,
		Stake:          round.Stake,
		MineCount:      round.MineCount,
		Revealed:       round.Revealed,
		Multiplier:     round.Multiplier,
		PotentialWin:   round.PotentialWin,
		Payout:         round.Payout,
		Forced:         round.Forced,
		Balance:        balance,
		ServerSeedHash: round.ServerSeedHash,
	}
	if round.IsTerminal() {
		result.ServerSeed = round.ServerSeed
		result.MinePositions = round.MinePositions
	}
	return result
}

func unmarshalMinesResult(data []byte) (*ports.MinesRoundResult, error) {
	result := &ports.MinesRoundResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached round: %w", err))
	}
	result.Idempotent = true
	return result, nil
}
