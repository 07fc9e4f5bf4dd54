package handler

import (
	"errors"
	"net/http"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authLogic *logic.AuthLogic
}

func NewAuthHandler(authLogic *logic.AuthLogic) *AuthHandler {
	return &AuthHandler{
		authLogic: authLogic,
	}
}

// Login 登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := h.authLogic.Login(req.Email, req.Password)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}

	SuccessResponse(c, http.StatusOK, "登录成功", user)
}

// Register 注册
func (h *AuthHandler) Register(c *gin.Context) {
	var input logic.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authLogic.Register(input)
	if err != nil {
		if errors.Is(err, logic.ErrEmailTaken) {
			ErrorResponse(c, http.StatusConflict, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "注册成功", user)
}

// Session 获取当前会话用户
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := h.authLogic.CurrentUser()
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未登录")
		return
	}

	SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateSession 更新当前会话用户
func (h *AuthHandler) UpdateSession(c *gin.Context) {
	current, ok := h.authLogic.CurrentUser()
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未登录")
		return
	}

	var req struct {
		SwarmTokens         *int64  `json:"swarmTokens"`
		AgentName           *string `json:"agentName"`
		PrimaryRole         *string `json:"primaryRole"`
		OnboardingCompleted *bool   `json:"onboardingCompleted"`
		Bio                 *string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.SwarmTokens != nil {
		current.SwarmTokens = *req.SwarmTokens
	}
	if req.AgentName != nil {
		current.AgentName = *req.AgentName
	}
	if req.PrimaryRole != nil {
		current.PrimaryRole = *req.PrimaryRole
	}
	if req.OnboardingCompleted != nil {
		current.OnboardingCompleted = *req.OnboardingCompleted
	}
	if req.Bio != nil {
		current.Bio = *req.Bio
	}

	h.authLogic.UpdateCurrentUser(current)

	SuccessResponse(c, http.StatusOK, "会话已更新", current)
}

// Logout 退出登录
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authLogic.Logout()
	SuccessResponse(c, http.StatusOK, "已退出登录", nil)
}
