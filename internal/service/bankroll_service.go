package service

import (
	"context"
	"fmt"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const recentLedgerEntries = 50

// BankrollServiceImpl implements ports.BankrollService: the operator
// controls over the shared pool plus player wallet reads and credits.
type BankrollServiceImpl struct {
	playerRepo   ports.PlayerRepository
	bankrollRepo ports.BankrollRepository
	catalogRepo  ports.CatalogRepository
	journalRepo  ports.JournalRepository
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewBankrollService creates a new BankrollServiceImpl.
func NewBankrollService(
	playerRepo ports.PlayerRepository,
	bankrollRepo ports.BankrollRepository,
	catalogRepo ports.CatalogRepository,
	journalRepo ports.JournalRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *BankrollServiceImpl {
	return &BankrollServiceImpl{
		playerRepo:   playerRepo,
		bankrollRepo: bankrollRepo,
		catalogRepo:  catalogRepo,
		journalRepo:  journalRepo,
		transactor:   transactor,
		log:          log,
	}
}

// Status returns the pool snapshot with its recent ledger tail.
func (s *BankrollServiceImpl) Status(ctx context.Context) (*ports.BankrollStatus, error) {
	bankroll, err := s.bankrollRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load bankroll: %w", err))
	}
	entries, err := s.journalRepo.ListRecent(ctx, recentLedgerEntries)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return &ports.BankrollStatus{
		AvailableLiquidity: bankroll.AvailableLiquidity,
		PayoutEnabled:      bankroll.PayoutEnabled,
		MaxSinglePayout:    bankroll.MaxSinglePayout,
		UpdatedAt:          bankroll.UpdatedAt,
		RecentEntries:      entries,
	}, nil
}

// SetPayoutEnabled flips the kill switch. In-flight rounds follow the
// configured maintenance policy, not this flag directly.
func (s *BankrollServiceImpl) SetPayoutEnabled(ctx context.Context, enabled bool) error {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}
	bankroll.PayoutEnabled = enabled
	if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
		return apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Warn().Bool("enabled", enabled).Msg("payout kill switch changed")
	return nil
}

// Topup adds operator funds to the pool and journals the injection.
func (s *BankrollServiceImpl) Topup(ctx context.Context, amount int64) (*ports.BankrollStatus, error) {
	if amount <= 0 {
		return nil, apperror.Validation("top-up amount must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}
	bankroll.AvailableLiquidity += amount
	if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
	}
	if err := s.journalRepo.Append(ctx, dbTx, &domain.LedgerEntry{
		ID:             uuid.New(),
		Direction:      domain.LedgerTopup,
		Amount:         amount,
		LiquidityAfter: bankroll.AvailableLiquidity,
		CreatedAt:      time.Now().UTC(),
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append ledger: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Int64("amount", amount).Int64("liquidity", bankroll.AvailableLiquidity).Msg("bankroll topped up")
	return s.Status(ctx)
}

// SetMaxSinglePayout changes the per-round payout cap.
func (s *BankrollServiceImpl) SetMaxSinglePayout(ctx context.Context, cap int64) error {
	if cap <= 0 {
		return apperror.Validation("payout cap must be positive")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bankroll, err := s.bankrollRepo.GetForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock bankroll: %w", err))
	}
	bankroll.MaxSinglePayout = cap
	if err := s.bankrollRepo.Save(ctx, dbTx, bankroll); err != nil {
		return apperror.InternalError(fmt.Errorf("save bankroll: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Int64("cap", cap).Msg("payout cap changed")
	return nil
}

// Balance returns the player wallet snapshot.
func (s *BankrollServiceImpl) Balance(ctx context.Context, playerID uuid.UUID) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load player: %w", err))
	}
	if player == nil {
		return nil, apperror.ErrNotFound("player")
	}
	return player, nil
}

// CreatePlayer provisions a wallet for a storefront customer. The
// storefront holds the identity; this service only tracks value.
func (s *BankrollServiceImpl) CreatePlayer(ctx context.Context, initialBalance int64) (*domain.Player, error) {
	if initialBalance < 0 {
		return nil, apperror.Validation("initial balance cannot be negative")
	}

	now := time.Now().UTC()
	player := &domain.Player{
		ID:        uuid.New(),
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create player: %w", err))
	}

	s.log.Info().Str("player_id", player.ID.String()).Int64("balance", initialBalance).Msg("player created")
	return player, nil
}

// CreditPlayer adds funds to a player wallet. Deposits come from the
// storefront, not the pool, so the ledger is untouched.
func (s *BankrollServiceImpl) CreditPlayer(ctx context.Context, playerID uuid.UUID, amount int64) (*domain.Player, error) {
	if amount <= 0 {
		return nil, apperror.Validation("credit amount must be positive")
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
	player.Balance += amount
	if err := s.playerRepo.UpdateBalance(ctx, dbTx, player.ID, player.Balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("player_id", playerID.String()).Int64("amount", amount).Msg("player wallet credited")
	return player, nil
}

// ReplaceSlotSymbols swaps the slot catalog. Weights are re-derived
// from multipliers before storage so admin-entered frequencies cannot
// skew the draw.
func (s *BankrollServiceImpl) ReplaceSlotSymbols(ctx context.Context, symbols []domain.SlotSymbol) error {
	if len(symbols) == 0 {
		return apperror.Validation("symbol catalog cannot be empty")
	}
	seen := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		if sym.ID == "" || sym.Multiplier <= 0 {
			return apperror.Validation("every symbol needs an ID and a positive multiplier")
		}
		if seen[sym.ID] {
			return apperror.Validation("duplicate symbol ID: " + sym.ID)
		}
		seen[sym.ID] = true
	}
	if err := s.catalogRepo.ReplaceSlotSymbols(ctx, domain.NormalizeSlotWeights(symbols)); err != nil {
		return apperror.InternalError(fmt.Errorf("replace slot symbols: %w", err))
	}
	s.log.Info().Int("symbols", len(symbols)).Msg("slot catalog replaced")
	return nil
}

// ReplaceWheelSegments swaps the wheel catalog. Remaining counters
// reset to each segment's daily limit.
func (s *BankrollServiceImpl) ReplaceWheelSegments(ctx context.Context, segments []domain.WheelSegment) error {
	if len(segments) == 0 {
		return apperror.Validation("wheel catalog cannot be empty")
	}
	for i := range segments {
		seg := &segments[i]
		switch seg.PrizeType {
		case domain.PrizePoints, domain.PrizeCash, domain.PrizeFreeTicket, domain.PrizeNothing:
		default:
			return apperror.Validation("unknown prize type: " + string(seg.PrizeType))
		}
		if seg.PrizeType != domain.PrizeNothing && seg.Value <= 0 {
			return apperror.Validation("prize value must be positive")
		}
		seg.Remaining = seg.DailyLimit
	}
	if err := s.catalogRepo.ReplaceWheelSegments(ctx, segments); err != nil {
		return apperror.InternalError(fmt.Errorf("replace wheel segments: %w", err))
	}
	s.log.Info().Int("segments", len(segments)).Msg("wheel catalog replaced")
	return nil
}
