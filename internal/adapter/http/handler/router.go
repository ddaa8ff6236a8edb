package handler

import (
	"wager-arena/internal/adapter/http/middleware"
	"wager-arena/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	MinesSvc        ports.MinesService
	SlotsSvc        ports.SlotsService
	WheelSvc        ports.WheelService
	BankrollSvc     ports.BankrollService
	FairnessSvc     ports.FairnessService
	TokenSvc        ports.TokenService
	HashSvc         ports.HashService
	OperatorKeyHash string                // empty = admin surface disabled
	RateLimitStore  ports.RateLimitStore  // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Player routes (JWT-authenticated) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	minesHandler := NewMinesHandler(deps.MinesSvc)
	mines := v1.Group("/mines/rounds")
	{
		mines.POST("", rl("bets"), minesHandler.Start)
		mines.POST("/reveal", rl("reveals"), minesHandler.Reveal)
		mines.POST("/cashout", rl("reveals"), minesHandler.CashOut)
		mines.GET("/active", rl("reads"), minesHandler.Active)
	}

	slotsHandler := NewSlotsHandler(deps.SlotsSvc)
	slots := v1.Group("/slots")
	{
		slots.POST("/spins", rl("bets"), slotsHandler.Spin)
		slots.GET("/symbols", rl("reads"), slotsHandler.Symbols)
	}

	wheelHandler := NewWheelHandler(deps.WheelSvc)
	wheel := v1.Group("/wheel")
	{
		wheel.POST("/spins", rl("wheel"), wheelHandler.Spin)
		wheel.GET("/state", rl("reads"), wheelHandler.State)
	}

	walletHandler := NewWalletHandler(deps.BankrollSvc)
	v1.GET("/wallet/balance", rl("reads"), walletHandler.Balance)

	fairnessHandler := NewFairnessHandler(deps.FairnessSvc)
	v1.GET("/fairness/rounds/:id", rl("fairness"), fairnessHandler.VerifyRound)

	// --- Operator routes (X-Operator-Key, Argon2id-verified) ---
	operatorAuth := middleware.OperatorAuth(deps.HashSvc, deps.OperatorKeyHash, deps.Logger)
	adminHandler := NewAdminHandler(deps.BankrollSvc)
	admin := r.Group("/admin/v1", operatorAuth, rl("admin"))
	{
		admin.GET("/bankroll", adminHandler.Bankroll)
		admin.PUT("/bankroll/payout-enabled", adminHandler.SetPayoutEnabled)
		admin.POST("/bankroll/topup", adminHandler.Topup)
		admin.PUT("/bankroll/max-payout", adminHandler.SetMaxSinglePayout)
		admin.PUT("/catalog/slot-symbols", adminHandler.ReplaceSlotSymbols)
		admin.PUT("/catalog/wheel-segments", adminHandler.ReplaceWheelSegments)
		admin.POST("/players", adminHandler.CreatePlayer)
		admin.POST("/players/:id/credit", adminHandler.CreditPlayer)
	}

	return r
}
