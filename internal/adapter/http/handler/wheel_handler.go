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

// WheelHandler handles daily prize wheel endpoints.
type WheelHandler struct {
	wheelSvc ports.WheelService
}

// NewWheelHandler creates a new WheelHandler.
func NewWheelHandler(wheelSvc ports.WheelService) *WheelHandler {
	return &WheelHandler{wheelSvc: wheelSvc}
}

// Spin handles POST /api/v1/wheel/spins.
func (h *WheelHandler) Spin(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WheelSpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.wheelSvc.Spin(c.Request.Context(), ports.WheelSpinRequest{
		PlayerID:    playerID.(uuid.UUID),
		Paid:        req.Paid,
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

// State handles GET /api/v1/wheel/state.
func (h *WheelHandler) State(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	state, err := h.wheelSvc.State(c.Request.Context(), playerID.(uuid.UUID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, state)
}
