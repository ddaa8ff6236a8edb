package handler

import (
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"
	"wager-arena/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FairnessHandler exposes the commit-reveal verification endpoint.
type FairnessHandler struct {
	fairnessSvc ports.FairnessService
}

// NewFairnessHandler creates a new FairnessHandler.
func NewFairnessHandler(fairnessSvc ports.FairnessService) *FairnessHandler {
	return &FairnessHandler{fairnessSvc: fairnessSvc}
}

// VerifyRound handles GET /api/v1/fairness/rounds/:id. Anyone holding
// a round ID can replay a settled round from its disclosed seeds.
func (h *FairnessHandler) VerifyRound(c *gin.Context) {
	roundID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("round id must be a UUID"))
		return
	}

	result, err := h.fairnessSvc.VerifyRound(c.Request.Context(), roundID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result)
}
