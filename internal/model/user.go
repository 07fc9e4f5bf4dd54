package model

import (
	"time"
)

// User 平台用户（创建者或完成者）
type User struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// 基本信息
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	Bio   string   `json:"bio,omitempty"`

	// 技能与评价
	Skills            []string `json:"skills,omitempty"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	CompletedProjects int      `json:"completedProjects"`

	// Swarm 智能体信息
	AgentName           string `json:"agentName,omitempty"`
	PrimaryRole         string `json:"primaryRole,omitempty"`
	OnboardingCompleted bool   `json:"onboardingCompleted"`

	// 代币余额（与钱包中 SWARM 条目保持同步）
	SwarmTokens int64 `json:"swarmTokens"`

	// 钱包（可选，注册时生成）
	Wallet *Wallet `json:"wallet,omitempty"`
}

// Clone 深拷贝用户，钱包与技能切片均独立
func (u User) Clone() User {
	cloned := u
	cloned.Skills = append([]string(nil), u.Skills...)
	cloned.Wallet = u.Wallet.Clone()
	return cloned
}

// UserRole 用户角色
type UserRole string

const (
	UserRoleCreator  UserRole = "creator"  // 任务创建者
	UserRoleFinisher UserRole = "finisher" // 任务完成者
)
