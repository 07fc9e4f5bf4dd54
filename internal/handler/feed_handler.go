package handler

import (
	"net/http"
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedHandler 消息与评价
type FeedHandler struct {
	store *repository.Store
}

func NewFeedHandler(store *repository.Store) *FeedHandler {
	return &FeedHandler{
		store: store,
	}
}

// GetMessages 获取消息列表
func (h *FeedHandler) GetMessages(c *gin.Context) {
	messages := h.store.Messages()
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"messages": messages,
		"total":    len(messages),
	})
}

// AddMessage 发送消息
func (h *FeedHandler) AddMessage(c *gin.Context) {
	var req struct {
		SenderId    string `json:"senderId" binding:"required"`
		RecipientId string `json:"recipientId"`
		ProjectId   string `json:"projectId"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	message := model.Message{
		Id:          uuid.NewString(),
		CreatedAt:   time.Now(),
		SenderId:    req.SenderId,
		RecipientId: req.RecipientId,
		ProjectId:   req.ProjectId,
		Content:     req.Content,
	}
	h.store.AddMessage(message)

	SuccessResponse(c, http.StatusCreated, "消息发送成功", message)
}

// GetReviews 获取评价列表
func (h *FeedHandler) GetReviews(c *gin.Context) {
	reviews := h.store.Reviews()
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"reviews": reviews,
		"total":   len(reviews),
	})
}

// AddReview 提交评价
func (h *FeedHandler) AddReview(c *gin.Context) {
	var req struct {
		ProjectId  string  `json:"projectId" binding:"required"`
		ReviewerId string  `json:"reviewerId" binding:"required"`
		RevieweeId string  `json:"revieweeId" binding:"required"`
		Rating     float64 `json:"rating" binding:"required,min=1,max=5"`
		Comment    string  `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	review := model.Review{
		Id:         uuid.NewString(),
		CreatedAt:  time.Now(),
		ProjectId:  req.ProjectId,
		ReviewerId: req.ReviewerId,
		RevieweeId: req.RevieweeId,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	h.store.AddReview(review)

	SuccessResponse(c, http.StatusCreated, "评价提交成功", review)
}

// RefreshStore 丢弃内存集合并从介质重新加载
func (h *FeedHandler) RefreshStore(c *gin.Context) {
	h.store.Refresh()
	SuccessResponse(c, http.StatusOK, "数据已刷新", nil)
}

// ClearStore 清空数据并重置为种子数据
func (h *FeedHandler) ClearStore(c *gin.Context) {
	h.store.Clear()
	SuccessResponse(c, http.StatusOK, "数据已重置", nil)
}
