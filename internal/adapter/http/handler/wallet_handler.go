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

// WalletHandler handles player wallet endpoints.
type WalletHandler struct {
	bankrollSvc ports.BankrollService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(bankrollSvc ports.BankrollService) *WalletHandler {
	return &WalletHandler{bankrollSvc: bankrollSvc}
}

// Balance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) Balance(c *gin.Context) {
	playerID, ok := c.Get(middleware.CtxPlayerID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	player, err := h.bankrollSvc.Balance(c.Request.Context(), playerID.(uuid.UUID))
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
