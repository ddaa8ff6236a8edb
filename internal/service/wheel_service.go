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

// maxWheelRedraws bounds the re-draw loop when the stream lands on
// exhausted segments. Eligibility is checked upfront, so hitting the
// bound means the catalog changed under us.
const maxWheelRedraws = 64

// WheelServiceImpl implements ports.WheelService. One free spin per
// rolling 24h window; further spins are paid wagers against the pool.
type WheelServiceImpl struct {
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

// NewWheelService creates a new WheelServiceImpl.
func NewWheelService(
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
) *WheelServiceImpl {
	return &WheelServiceImpl{
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

// Spin awards one wheel prize. A free spin requires the daily window
// to have recharged; a paid spin costs the extra-spin price.
func (s *WheelServiceImpl) Spin(ctx context.Context, req ports.WheelSpinRequest) (*ports.WheelSpinResult, error) {
	betKey := domain.BuildBetKey(req.PlayerID, domain.GameWheel, req.ReferenceID)

	// Layer 1: Redis idempotency check
	cached, err := s.betCache.Get(ctx, betKey)
	if err != nil {
		s.log.Warn().Err(err).Str("key", betKey).Msg("redis bet check failed, falling through to DB")
	}
	if cached != nil {
		return unmarshalWheelResult(cached)
	}

	// Layer 2: DB idempotency check
	betLog, err := s.betLogRepo.Get(ctx, betKey)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db bet check: %w", err))
	}
	if betLog != nil {
		return unmarshalWheelResult(betLog.ResponseJSON)
	}

	segments, err := s.catalogRepo.ListWheelSegments(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wheel segments: %w", err))
	}
	if len(segments) == 0 {
		return nil, apperror.InternalError(fmt.Errorf("wheel segment catalog is empty"))
	}
	if len(domain.EligibleSegments(segments)) == 0 {
		return nil, apperror.ErrWheelExhausted()
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

	now := time.Now().UTC()
	free := !req.Paid
	stake := int64(0)
	if free {
		if !player.FreeSpinAvailable(now) {
			return nil, apperror.ErrFreeSpinNotAvailable()
		}
	} else {
		stake = s.games.ExtraSpinPrice
		if player.Balance < stake {
			return nil, apperror.ErrInsufficientBalance()
		}
	}

	// Lock & check the house bankroll
	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}
	if !bankroll.PayoutEnabled {
		return nil, apperror.ErrPayoutsDisabled()
	}

	commitment, err := s.fairness.NewCommitment()
	if err != nil {
		return nil, err
	}
	stream := s.fairness.Stream(commitment.ServerSeed, req.ClientSeed)

	// Every draw is recorded, including re-draws onto exhausted
	// segments, so verification can replay the full sequence.
	var draws []int
	var segment *domain.WheelSegment
	for i := 0; i < maxWheelRedraws; i++ {
		d := stream.Intn(len(segments))
		draws = append(draws, d)
		if segments[d].Available() {
			segment = &segments[d]
			break
		}
	}
	if segment == nil {
		return nil, apperror.ErrWheelExhausted()
	}

	if stake > 0 {
		player.Balance -= stake
		bankroll.ReserveStake(stake)
	}

	payout := int64(0)
	switch segment.PrizeType {
	case domain.PrizeCash:
		payout = bankroll.AuthorizePayout(segment.Value)
		player.Balance += payout
		bankroll.Settle(payout)
	case domain.PrizePoints:
		player.Points += segment.Value
	case domain.PrizeFreeTicket:
		player.Tickets += segment.Value
	case domain.PrizeNothing:
	}

	state := domain.RoundStateLost
	if segment.PrizeType != domain.PrizeNothing {
		state = domain.RoundStateWon
	}
	catalogJSON, err := json.Marshal(segments)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal catalog: %w", err))
	}
	round := &domain.Round{
		ID:             uuid.New(),
		PlayerID:       req.PlayerID,
		Game:           domain.GameWheel,
		State:          state,
		Stake:          stake,
		ServerSeed:     commitment.ServerSeed,
		ServerSeedHash: commitment.ServerSeedHash,
		ClientSeed:     req.ClientSeed,
		Revealed:       draws,
		Catalog:        catalogJSON,
		Payout:         payout,
		ReferenceID:    req.ReferenceID,
		CreatedAt:      now,
		SettledAt:      &now,
	}

	if err := s.playerRepo.UpdateBalance(ctx, dbTx, player.ID, player.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	switch segment.PrizeType {
	case domain.PrizePoints:
		if err := s.playerRepo.UpdatePoints(ctx, dbTx, player.ID, player.Points); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update points: %w", err))
		}
	case domain.PrizeFreeTicket:
		if err := s.playerRepo.UpdateTickets(ctx, dbTx, player.ID, player.Tickets); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update tickets: %w", err))
		}
	}
	if free {
		player.LastFreeSpin = &now
		if err := s.playerRepo.SetLastFreeSpin(ctx, dbTx, player.ID, now); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("set last free spin: %w", err))
		}
	}
	if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
	}
	if segment.DailyLimit > 0 {
		segment.Remaining--
		if err := s.catalogRepo.DecrementWheelRemaining(ctx, dbTx, segment.ID); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("decrement segment: %w", err))
		}
	}
	if err := s.roundRepo.Create(ctx, dbTx, round); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create round: %w", err))
	}
	if stake > 0 {
		if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
			ID:             uuid.New(),
			RoundID:        &round.ID,
			Game:           domain.GameWheel,
			Direction:      domain.LedgerReserve,
			Amount:         stake,
			LiquidityAfter: bankroll.AvailableLiquidity + payout,
			CreatedAt:      now,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
		}
	}
	if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
		ID:             uuid.New(),
		RoundID:        &round.ID,
		Game:           domain.GameWheel,
		Direction:      domain.LedgerSettle,
		Amount:         payout,
		LiquidityAfter: bankroll.AvailableLiquidity,
		CreatedAt:      now,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}

	nextFree := now.Add(domain.FreeSpinWindow)
	if !free && player.LastFreeSpin != nil {
		nextFree = player.LastFreeSpin.Add(domain.FreeSpinWindow)
	}
	result := &ports.WheelSpinResult{
		RoundID:        round.ID,
		Segment:        *segment,
		Free:           free,
		Balance:        player.Balance,
		Points:         player.Points,
		Tickets:        player.Tickets,
		NextFreeSpin:   nextFree,
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
		Bool("free", free).
		Str("prize", string(segment.PrizeType)).
		Int64("payout", payout).
		Msg("wheel spin settled")

	return result, nil
}

// State returns the wheel snapshot for a player.
func (s *WheelServiceImpl) State(ctx context.Context, playerID uuid.UUID) (*ports.WheelState, error) {
	segments, err := s.catalogRepo.ListWheelSegments(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wheel segments: %w", err))
	}
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}

	now := time.Now().UTC()
	state := &ports.WheelState{
		Segments:      segments,
		FreeAvailable: player.FreeSpinAvailable(now),
		SpinPrice:     s.games.ExtraSpinPrice,
	}
	if player.LastFreeSpin != nil {
		state.NextFreeSpin = player.LastFreeSpin.Add(domain.FreeSpinWindow)
	}
	return state, nil
}

func unmarshalWheelResult(data []byte) (*ports.WheelSpinResult, error) {
	result := &ports.WheelSpinResult{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached spin: %w", err))
	}
	result.Idempotent = true
	return result, nil
}
