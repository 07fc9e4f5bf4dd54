package handler

import (
	"errors"
	"net/http"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	store       *repository.Store
	ledgerLogic *logic.LedgerLogic
	authLogic   *logic.AuthLogic
}

func NewProjectHandler(store *repository.Store, ledgerLogic *logic.LedgerLogic, authLogic *logic.AuthLogic) *ProjectHandler {
	return &ProjectHandler{
		store:       store,
		ledgerLogic: ledgerLogic,
		authLogic:   authLogic,
	}
}

// GetProjects 获取项目列表
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	status := c.Query("status")

	var projects []model.Project
	if status != "" {
		projects = h.store.ProjectsByStatus(model.ProjectStatus(status))
	} else {
		projects = h.store.Projects()
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"projects": projects,
		"total":    len(projects),
	})
}

// GetProject 获取单个项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := h.store.FindProject(c.Param("id"))
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "项目不存在")
		return
	}

	SuccessResponse(c, http.StatusOK, "", project)
}

// DeployMission 发布任务（仅创建者角色，收取固定费用）
func (h *ProjectHandler) DeployMission(c *gin.Context) {
	user, ok := h.authLogic.CurrentUser()
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未登录")
		return
	}
	if user.Role != model.UserRoleCreator {
		ErrorResponse(c, http.StatusForbidden, "只有创建者可以发布任务")
		return
	}

	var input logic.MissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.ledgerLogic.DeployMission(user.Id, input)
	if err != nil {
		if errors.Is(err, logic.ErrInsufficientTokens) {
			ErrorResponse(c, http.StatusPaymentRequired, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "任务发布成功", project)
}

// UpdateProject 更新项目
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.FindProject(id); !ok {
		ErrorResponse(c, http.StatusNotFound, "项目不存在")
		return
	}

	// 只允许更新特定字段
	var req struct {
		Title            *string              `json:"title"`
		Description      *string              `json:"description"`
		DesiredOutcome   *string              `json:"desiredOutcome"`
		Platform         *string              `json:"platform"`
		AppLink          *string              `json:"appLink"`
		Budget           *int64               `json:"budget"`
		SwarmTokenReward *int64               `json:"swarmTokenReward"`
		Status           *model.ProjectStatus `json:"status"`
		FinisherId       *string              `json:"finisherId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.store.UpdateProject(id, repository.ProjectUpdate{
		Title:            req.Title,
		Description:      req.Description,
		DesiredOutcome:   req.DesiredOutcome,
		Platform:         req.Platform,
		AppLink:          req.AppLink,
		Budget:           req.Budget,
		SwarmTokenReward: req.SwarmTokenReward,
		Status:           req.Status,
		FinisherId:       req.FinisherId,
	})

	project, _ := h.store.FindProject(id)
	SuccessResponse(c, http.StatusOK, "项目更新成功", project)
}

// DistributeTokens 任务完成结算
func (h *ProjectHandler) DistributeTokens(c *gin.Context) {
	var req struct {
		FinisherId string `json:"finisherId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if !h.ledgerLogic.DistributeTokens(c.Param("id"), req.FinisherId) {
		ErrorResponse(c, http.StatusNotFound, "项目或完成者不存在")
		return
	}

	project, _ := h.store.FindProject(c.Param("id"))
	SuccessResponse(c, http.StatusOK, "奖励发放成功", project)
}
