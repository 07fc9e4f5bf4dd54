package handler

import (
	"net/http"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store       *repository.Store
	ledgerLogic *logic.LedgerLogic
}

func NewUserHandler(store *repository.Store, ledgerLogic *logic.LedgerLogic) *UserHandler {
	return &UserHandler{
		store:       store,
		ledgerLogic: ledgerLogic,
	}
}

// GetUsers 获取用户列表
func (h *UserHandler) GetUsers(c *gin.Context) {
	users := h.store.Users()
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"users": users,
		"total": len(users),
	})
}

// GetUser 获取用户详情
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := h.store.FindUser(c.Param("id"))
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "用户不存在")
		return
	}

	SuccessResponse(c, http.StatusOK, "", user)
}

// GetWallet 获取用户钱包
func (h *UserHandler) GetWallet(c *gin.Context) {
	user, ok := h.store.FindUser(c.Param("id"))
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "用户不存在")
		return
	}
	if user.Wallet == nil {
		ErrorResponse(c, http.StatusNotFound, "用户未绑定钱包")
		return
	}

	SuccessResponse(c, http.StatusOK, "", user.Wallet)
}

// SetBalance 设置用户 SWARM 余额（钱包同步更新）
func (h *UserHandler) SetBalance(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.FindUser(id); !ok {
		ErrorResponse(c, http.StatusNotFound, "用户不存在")
		return
	}

	var req struct {
		Balance *int64 `json:"balance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if *req.Balance < 0 {
		ErrorResponse(c, http.StatusBadRequest, "余额不能为负数")
		return
	}

	h.ledgerLogic.SetBalance(id, *req.Balance)

	user, _ := h.store.FindUser(id)
	SuccessResponse(c, http.StatusOK, "余额更新成功", user)
}
