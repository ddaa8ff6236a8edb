package handler

import (
	"wager-arena/internal/adapter/http/dto"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles the operator surface: pool controls, catalog
// management and player provisioning.
type AdminHandler struct {
	bankrollSvc ports.BankrollService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bankrollSvc ports.BankrollService) *AdminHandler {
	return &AdminHandler{bankrollSvc: bankrollSvc}
}

// Bankroll handles GET /admin/v1/bankroll.
func (h *AdminHandler) Bankroll(c *gin.Context) {
	status, err := h.bankrollSvc.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// SetPayoutEnabled handles PUT /admin/v1/bankroll/payout-enabled.
func (h *AdminHandler) SetPayoutEnabled(c *gin.Context) {
	var req dto.PayoutToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.bankrollSvc.SetPayoutEnabled(c.Request.Context(), *req.Enabled); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"payout_enabled": *req.Enabled})
}

// Topup handles POST /admin/v1/bankroll/topup.
func (h *AdminHandler) Topup(c *gin.Context) {
	var req dto.TopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	status, err := h.bankrollSvc.Topup(c.Request.Context(), req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// SetMaxSinglePayout handles PUT /admin/v1/bankroll/max-payout.
func (h *AdminHandler) SetMaxSinglePayout(c *gin.Context) {
	var req dto.PayoutCapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.bankrollSvc.SetMaxSinglePayout(c.Request.Context(), req.MaxSinglePayout); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"max_single_payout": req.MaxSinglePayout})
}

// ReplaceSlotSymbols handles PUT /admin/v1/catalog/slot-symbols.
func (h *AdminHandler) ReplaceSlotSymbols(c *gin.Context) {
	var req dto.ReplaceSymbolsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	symbols := make([]domain.SlotSymbol, len(req.Symbols))
	for i, s := range req.Symbols {
		symbols[i] = domain.SlotSymbol{
			ID:         s.ID,
			Icon:       s.Icon,
			Label:      s.Label,
			Multiplier: s.Multiplier,
		}
	}

	if err := h.bankrollSvc.ReplaceSlotSymbols(c.Request.Context(), symbols); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"symbols": len(symbols)})
}

// ReplaceWheelSegments handles PUT /admin/v1/catalog/wheel-segments.
func (h *AdminHandler) ReplaceWheelSegments(c *gin.Context) {
	var req dto.ReplaceSegmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	segments := make([]domain.WheelSegment, len(req.Segments))
	for i, s := range req.Segments {
		segments[i] = domain.WheelSegment{
			ID:         s.ID,
			Label:      s.Label,
			PrizeType:  domain.PrizeType(s.PrizeType),
			Value:      s.Value,
			DailyLimit: s.DailyLimit,
		}
	}

	if err := h.bankrollSvc.ReplaceWheelSegments(c.Request.Context(), segments); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"segments": len(segments)})
}

// CreatePlayer handles POST /admin/v1/players.
func (h *AdminHandler) CreatePlayer(c *gin.Context) {
	var req dto.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	player, err := h.bankrollSvc.CreatePlayer(c.Request.Context(), req.InitialBalance)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.WalletResponse{
		PlayerID: player.ID.String(),
		Balance:  player.Balance,
		Points:   player.Points,
		Tickets:  player.Tickets,
	})
}

// CreditPlayer handles POST /admin/v1/players/:id/credit — storefront
// deposits landing in a player wallet.
func (h *AdminHandler) CreditPlayer(c *gin.Context) {
	playerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("player id must be a UUID"))
		return
	}

	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	player, err := h.bankrollSvc.CreditPlayer(c.Request.Context(), playerID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletResponse{
		PlayerID: player.ID.String(),
		Balance:  player.Balance,
		Points:   player.Points,
		Tickets:  player.Tickets,
	})
}
