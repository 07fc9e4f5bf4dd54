package model

import (
	"time"
)

// Project 任务项目
type Project struct {
	Id        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 基本信息
	Title          string `json:"title"`
	Description    string `json:"description"`
	DesiredOutcome string `json:"desiredOutcome"`
	Platform       string `json:"platform"`
	AppLink        string `json:"appLink,omitempty"`

	// 预算与奖励
	Budget           int64 `json:"budget,omitempty"`
	SwarmTokenReward int64 `json:"swarmTokenReward,omitempty"`

	// 状态
	Status ProjectStatus `json:"status"`

	// 参与者
	CreatorId  string `json:"creatorId"`
	FinisherId string `json:"finisherId,omitempty"`

	// 任务简报（可选）
	Brief *ProjectBrief `json:"brief,omitempty"`
}

// ProjectBrief 任务简报
type ProjectBrief struct {
	Id                string    `json:"id"`
	ProjectId         string    `json:"projectId"`
	IdentifiedIssue   string    `json:"identifiedIssue"`
	SuspectedLocation string    `json:"suspectedLocation"`
	ActionableSteps   []string  `json:"actionableSteps"`
	DefinitionOfDone  string    `json:"definitionOfDone"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Clone 深拷贝项目，简报独立
func (p Project) Clone() Project {
	cloned := p
	cloned.Brief = p.Brief.Clone()
	return cloned
}

// Clone 深拷贝简报，步骤切片独立
func (b *ProjectBrief) Clone() *ProjectBrief {
	if b == nil {
		return nil
	}
	cloned := *b
	cloned.ActionableSteps = append([]string(nil), b.ActionableSteps...)
	return &cloned
}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"        // 待认领
	ProjectStatusInProgress ProjectStatus = "in-progress" // 进行中
	ProjectStatusInReview   ProjectStatus = "in-review"   // 审核中
	ProjectStatusCompleted  ProjectStatus = "completed"   // 已完成
)

const (
	// SwarmTokenSymbol SWARM 代币符号
	SwarmTokenSymbol = "SWARM"

	// MissionDeployFee 发布任务固定费用（SWARM）
	MissionDeployFee int64 = 100

	// RegistrationBonus 新用户注册赠送代币数量
	RegistrationBonus int64 = 1000
)
