package handler

import (
	"net/http"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/gin-gonic/gin"
)

type TreasuryHandler struct {
	treasuryLogic *logic.TreasuryLogic
	authLogic     *logic.AuthLogic
}

func NewTreasuryHandler(treasuryLogic *logic.TreasuryLogic, authLogic *logic.AuthLogic) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryLogic: treasuryLogic,
		authLogic:     authLogic,
	}
}

// GetTreasury 获取国库数据
func (h *TreasuryHandler) GetTreasury(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", h.treasuryLogic.GetData())
}

// GetStats 获取国库统计信息
func (h *TreasuryHandler) GetStats(c *gin.Context) {
	stats := h.treasuryLogic.Stats()
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"stats":        stats,
		"estimatedApy": h.treasuryLogic.EstimatedAPY(),
	})
}

// GetInvestment 获取用户投资额
func (h *TreasuryHandler) GetInvestment(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"userId":     c.Param("id"),
		"investment": h.treasuryLogic.UserInvestment(c.Param("id")),
	})
}

// Invest 投资国库
func (h *TreasuryHandler) Invest(c *gin.Context) {
	user, ok := h.authLogic.CurrentUser()
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req struct {
		Amount int64 `json:"amount" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if !h.treasuryLogic.Invest(user.Id, req.Amount) {
		ErrorResponse(c, http.StatusInternalServerError, "投资处理失败")
		return
	}

	SuccessResponse(c, http.StatusOK, "投资成功", h.treasuryLogic.GetData())
}

// SimulateGrowth 手动触发一次模拟增值（演示用）
func (h *TreasuryHandler) SimulateGrowth(c *gin.Context) {
	h.treasuryLogic.SimulateGrowth()
	SuccessResponse(c, http.StatusOK, "增值已应用", h.treasuryLogic.Stats())
}
