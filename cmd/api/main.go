package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wager-arena/config"
	httpHandler "wager-arena/internal/adapter/http/handler"
	pgStorage "wager-arena/internal/adapter/storage/postgres"
	redisStorage "wager-arena/internal/adapter/storage/redis"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/internal/service"
	"wager-arena/pkg/logger"

	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wager Arena")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Schema bootstrap
	if err := pgStorage.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	playerRepo := pgStorage.NewPlayerRepo(pool)
	bankrollRepo := pgStorage.NewBankrollRepo(pool)
	roundRepo := pgStorage.NewRoundRepo(pool)
	catalogRepo := pgStorage.NewCatalogRepo(pool)
	betLogRepo := pgStorage.NewBetLogRepo(pool)
	journalRepo := pgStorage.NewJournalRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Seed the bankroll row and default catalogs on first start. Seed
	// is a no-op when the row already exists; catalogs are replaced
	// only while empty so operator edits survive restarts.
	if err := bankrollRepo.Seed(ctx, &domain.Bankroll{
		AvailableLiquidity: cfg.Bankroll.SeedLiquidity,
		PayoutEnabled:      true,
		MaxSinglePayout:    cfg.Games.MaxSinglePayout,
		UpdatedAt:          time.Now().UTC(),
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bankroll")
	}
	if err := seedCatalogs(ctx, catalogRepo, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalogs")
	}

	// Initialize Redis stores
	betCache := redisStorage.NewBetCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	fairnessSvc := service.NewFairnessService(roundRepo, catalogRepo, log)

	// Initialize game services
	minesSvc := service.NewMinesService(
		playerRepo, bankrollRepo, roundRepo, betLogRepo, journalRepo,
		betCache, fairnessSvc, transactor, cfg.Games, log,
	)
	slotsSvc := service.NewSlotsService(
		playerRepo, bankrollRepo, roundRepo, catalogRepo, betLogRepo, journalRepo,
		betCache, fairnessSvc, transactor, cfg.Games, log,
	)
	wheelSvc := service.NewWheelService(
		playerRepo, bankrollRepo, roundRepo, catalogRepo, betLogRepo, journalRepo,
		betCache, fairnessSvc, transactor, cfg.Games, log,
	)
	bankrollSvc := service.NewBankrollService(
		playerRepo, bankrollRepo, catalogRepo, journalRepo, transactor, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MinesSvc:        minesSvc,
		SlotsSvc:        slotsSvc,
		WheelSvc:        wheelSvc,
		BankrollSvc:     bankrollSvc,
		FairnessSvc:     fairnessSvc,
		TokenSvc:        tokenSvc,
		HashSvc:         hashSvc,
		OperatorKeyHash: cfg.Admin.OperatorKeyHash,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth},
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// seedCatalogs installs the default slot and wheel catalogs when the
// tables are empty.
func seedCatalogs(ctx context.Context, catalogRepo ports.CatalogRepository, log zerolog.Logger) error {
	symbols, err := catalogRepo.ListSlotSymbols(ctx)
	if err != nil {
		return fmt.Errorf("list slot symbols: %w", err)
	}
	if len(symbols) == 0 {
		if err := catalogRepo.ReplaceSlotSymbols(ctx, domain.DefaultSlotSymbols()); err != nil {
			return fmt.Errorf("seed slot symbols: %w", err)
		}
		log.Info().Msg("Default slot catalog installed")
	}

	segments, err := catalogRepo.ListWheelSegments(ctx)
	if err != nil {
		return fmt.Errorf("list wheel segments: %w", err)
	}
	if len(segments) == 0 {
		if err := catalogRepo.ReplaceWheelSegments(ctx, domain.DefaultWheelSegments()); err != nil {
			return fmt.Errorf("seed wheel segments: %w", err)
		}
		log.Info().Msg("Default wheel catalog installed")
	}

	return nil
}
