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

// MinesHandler handles mines game endpoints.
type MinesHandler struct {
	minesSvc ports.MinesService
}

// NewMinesHandler creates a new MinesHandler.
func NewMinesHandler(minesSvc ports.MinesService) *MinesHandler {
	return &MinesHandler{minesSvc: minesSvc}
}

// Start handles POST /api/v1/mines/rounds.
func (h *MinesHandler) Start(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.StartMinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.minesSvc.Start(c.Request.Context(), ports.StartMinesRequest{
		PlayerID:    playerID.(uuid.UUID),
		Stake:       req.Stake,
		MineCount:   req.MineCount,
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

// Reveal handles POST /api/v1/mines/rounds/reveal.
func (h *MinesHandler) Reveal(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.minesSvc.Reveal(c.Request.Context(), playerID.(uuid.UUID), *req.Cell)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// CashOut handles POST /api/v1/mines/rounds/cashout.
func (h *MinesHandler) CashOut(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.minesSvc.CashOut(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}

// Active handles GET /api/v1/mines/rounds/active — resume after a
// disconnect.
func (h *MinesHandler) Active(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	result, err := h.minesSvc.Active(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
