package handler

import (
	"wager-arena/internal/adapter/http/dto"
	"wager-arena/internal/adapter/http/middleware"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SlotsHandler handles slot machine endpoints.
type SlotsHandler struct {
	slotsSvc ports.SlotsService
}

// NewSlotsHandler creates a new SlotsHandler.
func NewSlotsHandler(slotsSvc ports.SlotsService) *SlotsHandler {
	return &SlotsHandler{slotsSvc: slotsSvc}
}

// Spin handles POST /api/v1/slots/spins.
func (h *SlotsHandler) Spin(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SlotSpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.slotsSvc.Spin(c.Request.Context(), ports.SpinRequest{
		PlayerID:    playerID.(uuid.UUID),
		Stake:       req.Stake,
		Turbo:       req.Turbo,
		ClientSeed:  req.ClientSeed,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Idempotent {
		response.OK(c, result)
		return
	}
	response.Created(c, result)
}

// Symbols handles GET /api/v1/slots/symbols — the paytable the client
// renders.
func (h *SlotsHandler) Symbols(c *gin.Context) {
	symbols, err := h.slotsSvc.Symbols(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"symbols": symbols})
}
