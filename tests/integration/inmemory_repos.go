package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Player Repo ---

type inMemoryPlayerRepo struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*domain.Player
}

func newInMemoryPlayerRepo() *inMemoryPlayerRepo {
	return &inMemoryPlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (r *inMemoryPlayerRepo) Create(ctx context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.players[p.ID] = &cp
	return nil
}

func (r *inMemoryPlayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPlayerRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Player, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPlayerRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player not found: %s", id)
	}
	p.Balance = balance
	return nil
}

func (r *inMemoryPlayerRepo) UpdatePoints(ctx context.Context, tx pgx.Tx, id uuid.UUID, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player not found: %s", id)
	}
	p.Points = points
	return nil
}

func (r *inMemoryPlayerRepo) UpdateTickets(ctx context.Context, tx pgx.Tx, id uuid.UUID, tickets int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player not found: %s", id)
	}
	p.Tickets = tickets
	return nil
}

func (r *inMemoryPlayerRepo) SetLastFreeSpin(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return fmt.Errorf("player not found: %s", id)
	}
	p.LastFreeSpin = &at
	return nil
}

// --- In-Memory Bankroll Repo ---

type inMemoryBankrollRepo struct {
	mu       sync.RWMutex
	bankroll *domain.Bankroll
}

func newInMemoryBankrollRepo() *inMemoryBankrollRepo {
	return &inMemoryBankrollRepo{}
}

func (r *inMemoryBankrollRepo) Seed(ctx context.Context, b *domain.Bankroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bankroll == nil {
		cp := *b
		r.bankroll = &cp
	}
	return nil
}

func (r *inMemoryBankrollRepo) Get(ctx context.Context) (*domain.Bankroll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.bankroll == nil {
		return nil, fmt.Errorf("bankroll row missing, seed it at startup")
	}
	cp := *r.bankroll
	return &cp, nil
}

func (r *inMemoryBankrollRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.Bankroll, error) {
	return r.Get(ctx)
}

func (r *inMemoryBankrollRepo) Save(ctx context.Context, tx pgx.Tx, b *domain.Bankroll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bankroll = &cp
	return nil
}

// --- In-Memory Round Repo ---

type inMemoryRoundRepo struct {
	mu     sync.RWMutex
	rounds map[uuid.UUID]*domain.Round
}

func newInMemoryRoundRepo() *inMemoryRoundRepo {
	return &inMemoryRoundRepo{rounds: make(map[uuid.UUID]*domain.Round)}
}

func (r *inMemoryRoundRepo) Create(ctx context.Context, tx pgx.Tx, round *domain.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if round.State == domain.RoundStatePlaying {
		for _, existing := range r.rounds {
			if existing.PlayerID == round.PlayerID && existing.Game == round.Game && existing.State == domain.RoundStatePlaying {
				return fmt.Errorf("player already has an active %s round", round.Game)
			}
		}
	}
	cp := *round
	r.rounds[round.ID] = &cp
	return nil
}

func (r *inMemoryRoundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	round, ok := r.rounds[id]
	if !ok {
		return nil, nil
	}
	cp := *round
	return &cp, nil
}

func (r *inMemoryRoundRepo) GetActiveByPlayer(ctx context.Context, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, round := range r.rounds {
		if round.PlayerID == playerID && round.Game == game && round.State == domain.RoundStatePlaying {
			cp := *round
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryRoundRepo) GetActiveByPlayerForUpdate(ctx context.Context, tx pgx.Tx, playerID uuid.UUID, game domain.GameKind) (*domain.Round, error) {
	return r.GetActiveByPlayer(ctx, playerID, game)
}

func (r *inMemoryRoundRepo) Update(ctx context.Context, tx pgx.Tx, round *domain.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rounds[round.ID]; !ok {
		return fmt.Errorf("round not found: %s", round.ID)
	}
	cp := *round
	r.rounds[round.ID] = &cp
	return nil
}

// --- In-Memory Catalog Repo ---

type inMemoryCatalogRepo struct {
	mu       sync.RWMutex
	symbols  []domain.SlotSymbol
	segments []domain.WheelSegment
}

func newInMemoryCatalogRepo() *inMemoryCatalogRepo {
	return &inMemoryCatalogRepo{}
}

func (r *inMemoryCatalogRepo) ListSlotSymbols(ctx context.Context) ([]domain.SlotSymbol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SlotSymbol, len(r.symbols))
	copy(out, r.symbols)
	return out, nil
}

func (r *inMemoryCatalogRepo) ReplaceSlotSymbols(ctx context.Context, symbols []domain.SlotSymbol) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.symbols = make([]domain.SlotSymbol, len(symbols))
	copy(r.symbols, symbols)
	return nil
}

func (r *inMemoryCatalogRepo) ListWheelSegments(ctx context.Context) ([]domain.WheelSegment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.WheelSegment, len(r.segments))
	copy(out, r.segments)
	return out, nil
}

func (r *inMemoryCatalogRepo) ReplaceWheelSegments(ctx context.Context, segments []domain.WheelSegment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = make([]domain.WheelSegment, len(segments))
	copy(r.segments, segments)
	return nil
}

func (r *inMemoryCatalogRepo) DecrementWheelRemaining(ctx context.Context, tx pgx.Tx, segmentID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.segments {
		if r.segments[i].ID == segmentID {
			if r.segments[i].Remaining <= 0 {
				return fmt.Errorf("wheel segment %d has no awards remaining", segmentID)
			}
			r.segments[i].Remaining--
			return nil
		}
	}
	return fmt.Errorf("wheel segment %d not found", segmentID)
}

// --- In-Memory BetLog Repo ---

type inMemoryBetLogRepo struct {
	mu   sync.RWMutex
	logs map[string]*domain.BetLog
}

func newInMemoryBetLogRepo() *inMemoryBetLogRepo {
	return &inMemoryBetLogRepo{logs: make(map[string]*domain.BetLog)}
}

func (r *inMemoryBetLogRepo) Create(ctx context.Context, tx pgx.Tx, log *domain.BetLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.logs[log.Key]; exists {
		return fmt.Errorf("duplicate bet key: %s", log.Key)
	}
	cp := *log
	r.logs[log.Key] = &cp
	return nil
}

func (r *inMemoryBetLogRepo) Get(ctx context.Context, key string) (*domain.BetLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.logs[key]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

// --- In-Memory Journal Repo ---

type inMemoryJournalRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryJournalRepo() *inMemoryJournalRepo {
	return &inMemoryJournalRepo{}
}

func (r *inMemoryJournalRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryJournalRepo) ListRecent(ctx context.Context, limit int) ([]domain.LedgerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.entries)
	if limit > n {
		limit = n
	}
	out := make([]domain.LedgerEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

func (r *inMemoryJournalRepo) all() []domain.LedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LedgerEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
