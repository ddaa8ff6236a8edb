package service

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const serverSeedBytes = 32

// FairnessServiceImpl implements ports.FairnessService. Outcomes are
// drawn from HMAC-SHA256(serverSeed, clientSeed:cursor), so a settled
// round can be replayed by anyone holding both seeds.
type FairnessServiceImpl struct {
	roundRepo   ports.RoundRepository
	catalogRepo ports.CatalogRepository
	log         zerolog.Logger
}

// NewFairnessService creates a new FairnessServiceImpl.
func NewFairnessService(roundRepo ports.RoundRepository, catalogRepo ports.CatalogRepository, log zerolog.Logger) *FairnessServiceImpl {
	return &FairnessServiceImpl{
		roundRepo:   roundRepo,
		catalogRepo: catalogRepo,
		log:         log,
	}
}

// NewCommitment draws a fresh server seed and returns it with its
// SHA-256 commitment.
func (s *FairnessServiceImpl) NewCommitment() (ports.Commitment, error) {
	raw := make([]byte, serverSeedBytes)
	if _, err := rand.Read(raw); err != nil {
		return ports.Commitment{}, apperror.InternalError(fmt.Errorf("draw server seed: %w", err))
	}
	seed := hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(seed))
	return ports.Commitment{
		ServerSeed:     seed,
		ServerSeedHash: hex.EncodeToString(sum[:]),
	}, nil
}

// Stream returns the deterministic draw sequence for a seed pair.
func (s *FairnessServiceImpl) Stream(serverSeed, clientSeed string) ports.OutcomeStream {
	return &hmacStream{serverSeed: serverSeed, clientSeed: clientSeed}
}

// VerifyRound replays a settled round from its disclosed seeds.
func (s *FairnessServiceImpl) VerifyRound(ctx context.Context, roundID uuid.UUID) (*ports.VerifyResult, error) {
	round, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load round: %w", err))
	}
	if round == nil {
		return nil, apperror.ErrRoundNotFound()
	}
	if !round.IsTerminal() {
		// The seed stays secret while the round can still be played.
		return nil, apperror.ErrSeedNotDisclosed()
	}

	sum := sha256.Sum256([]byte(round.ServerSeed))
	hashOK := hex.EncodeToString(sum[:]) == round.ServerSeedHash

	result := &ports.VerifyResult{
		RoundID:        round.ID,
		Game:           round.Game,
		ServerSeed:     round.ServerSeed,
		ServerSeedHash: round.ServerSeedHash,
		ClientSeed:     round.ClientSeed,
	}

	stream := s.Stream(round.ServerSeed, round.ClientSeed)
	switch round.Game {
	case domain.GameMines:
		mines := stream.SampleDistinct(domain.MinesGridSize, round.MineCount)
		result.Outcome = mines
		result.Valid = hashOK && equalInts(mines, round.MinePositions)
	case domain.GameSlots:
		symbols, err := s.slotCatalogFor(ctx, round)
		if err != nil {
			return nil, err
		}
		draws, grid := DrawSlotGrid(stream, symbols)
		result.Outcome = draws
		result.Valid = hashOK && equalStrings(grid, round.Grid)
	case domain.GameWheel:
		segments, err := s.wheelCatalogFor(ctx, round)
		if err != nil {
			return nil, err
		}
		draws := make([]int, 0, len(round.Revealed))
		for range round.Revealed {
			draws = append(draws, stream.Intn(len(segments)))
		}
		result.Outcome = draws
		result.Valid = hashOK && equalInts(draws, round.Revealed)
	default:
		return nil, apperror.InternalError(fmt.Errorf("unknown game kind %q", round.Game))
	}

	if !result.Valid {
		s.log.Warn().Str("round_id", round.ID.String()).Str("game", string(round.Game)).Msg("round verification mismatch")
	}
	return result, nil
}

// slotCatalogFor returns the symbol list the round's grid was drawn
// against. Rounds carry a snapshot so a later catalog replacement
// cannot break replay; rounds written before the snapshot existed
// fall back to the live catalog.
func (s *FairnessServiceImpl) slotCatalogFor(ctx context.Context, round *domain.Round) ([]domain.SlotSymbol, error) {
	if len(round.Catalog) > 0 {
		var symbols []domain.SlotSymbol
		if err := json.Unmarshal(round.Catalog, &symbols); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("decode catalog snapshot: %w", err))
		}
		return symbols, nil
	}
	symbols, err := s.catalogRepo.ListSlotSymbols(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list slot symbols: %w", err))
	}
	return domain.NormalizeSlotWeights(symbols), nil
}

func (s *FairnessServiceImpl) wheelCatalogFor(ctx context.Context, round *domain.Round) ([]domain.WheelSegment, error) {
	if len(round.Catalog) > 0 {
		var segments []domain.WheelSegment
		if err := json.Unmarshal(round.Catalog, &segments); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("decode catalog snapshot: %w", err))
		}
		return segments, nil
	}
	segments, err := s.catalogRepo.ListWheelSegments(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wheel segments: %w", err))
	}
	return segments, nil
}

// DrawSlotGrid draws the 9 grid cells from a stream using the catalog
// weights. It returns the raw weighted draws alongside the symbol IDs
// so verifiers can inspect both.
func DrawSlotGrid(stream ports.OutcomeStream, symbols []domain.SlotSymbol) ([]int, []string) {
	total := 0
	for _, sym := range symbols {
		total += sym.Frequency
	}
	draws := make([]int, domain.SlotCells)
	grid := make([]string, domain.SlotCells)
	for i := 0; i < domain.SlotCells; i++ {
		draw := stream.Intn(total)
		draws[i] = draw
		acc := 0
		for _, sym := range symbols {
			acc += sym.Frequency
			if draw < acc {
				grid[i] = sym.ID
				break
			}
		}
	}
	return draws, grid
}

// hmacStream is the ports.OutcomeStream implementation. Each draw
// hashes clientSeed:cursor under the server seed and consumes the
// first four digest bytes, advancing the cursor once per hash.
type hmacStream struct {
	serverSeed string
	clientSeed string
	cursor     int
}

func (h *hmacStream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Rejection sampling keeps the draw exactly uniform: values in the
	// truncated tail of the 32-bit range would favor small results, so
	// they are discarded and the next cursor position is hashed instead.
	span := uint64(1) << 32
	limit := span - span%uint64(n)
	for {
		mac := hmac.New(sha256.New, []byte(h.serverSeed))
		fmt.Fprintf(mac, "%s:%d", h.clientSeed, h.cursor)
		h.cursor++
		sum := mac.Sum(nil)
		v := uint64(binary.BigEndian.Uint32(sum[:4]))
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

func (h *hmacStream) SampleDistinct(n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	// Partial Fisher-Yates driven by the stream.
	for i := 0; i < k; i++ {
		j := i + h.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	picked := make([]int, k)
	copy(picked, pool[:k])
	sort.Ints(picked)
	return picked
}

func (h *hmacStream) Cursor() int { return h.cursor }

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
