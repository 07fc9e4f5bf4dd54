package model

import (
	"time"
)

// Message 站内消息
type Message struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	SenderId    string `json:"senderId"`
	RecipientId string `json:"recipientId,omitempty"`
	ProjectId   string `json:"projectId,omitempty"`
	Content     string `json:"content"`
}

// SystemSenderId 系统消息发送者标识
const SystemSenderId = "system"
