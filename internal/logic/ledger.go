package logic

import (
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/event"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerLogic SWARM 代币账本
type LedgerLogic struct {
	store  *repository.Store
	events *event.Monitor
}

// NewLedgerLogic 创建代币账本
func NewLedgerLogic(store *repository.Store, events *event.Monitor) *LedgerLogic {
	return &LedgerLogic{
		store:  store,
		events: events,
	}
}

// syncWalletBalance 将余额写入用户与钱包双份表示。
// 钱包 SWARM 条目余额必须等于 SwarmTokens，美元价值等于余额乘以单价；
// 所有余额变更路径都经过这一个函数。
func syncWalletBalance(user *model.User, balance int64) {
	user.SwarmTokens = balance

	if user.Wallet == nil {
		return
	}
	if token := user.Wallet.SwarmToken(); token != nil {
		token.Balance = decimal.NewFromInt(balance)
		token.USDValue = token.Balance.Mul(model.SwarmTokenPrice)
	}
}

// SetBalance 将用户余额设置为精确值并同步钱包，用户不存在时静默忽略
func (l *LedgerLogic) SetBalance(userId string, balance int64) {
	l.store.MutateUser(userId, func(u *model.User) {
		syncWalletBalance(u, balance)
	})
}

// MissionInput 发布任务的输入字段
type MissionInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	DesiredOutcome   string `json:"desiredOutcome"`
	Platform         string `json:"platform"`
	AppLink          string `json:"appLink"`
	Budget           int64  `json:"budget"`
	SwarmTokenReward int64  `json:"swarmTokenReward"`
}

// DeployMission 发布任务，从创建者余额扣除固定费用。
// 余额不足时返回 ErrInsufficientTokens 且不产生任何状态变更。
func (l *LedgerLogic) DeployMission(creatorId string, input MissionInput) (*model.Project, error) {
	creator, ok := l.store.FindUser(creatorId)
	if !ok {
		return nil, ErrUserNotFound
	}

	if creator.SwarmTokens < model.MissionDeployFee {
		return nil, ErrInsufficientTokens
	}

	// 先扣费再入库
	l.SetBalance(creatorId, creator.SwarmTokens-model.MissionDeployFee)

	now := time.Now()
	project := model.Project{
		Id:               uuid.NewString(),
		Title:            input.Title,
		Description:      input.Description,
		DesiredOutcome:   input.DesiredOutcome,
		Platform:         input.Platform,
		AppLink:          input.AppLink,
		Budget:           input.Budget,
		SwarmTokenReward: input.SwarmTokenReward,
		Status:           model.ProjectStatusOpen,
		CreatorId:        creatorId,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	l.store.AddProject(project)

	logger.Info("Mission %s deployed by %s, fee %d SWARM", project.Id, creatorId, model.MissionDeployFee)

	l.events.Publish(event.Event{
		Type:       event.TypeProjectCreated,
		UserId:     creatorId,
		ProjectId:  project.Id,
		Amount:     model.MissionDeployFee,
		OccurredAt: now,
	})

	return &project, nil
}

// DistributeTokens 任务完成结算：向完成者发放项目奖励、累加完成数、
// 项目状态置为 completed。项目或完成者无法解析时返回 false 且不产生任何变更。
func (l *LedgerLogic) DistributeTokens(projectId, finisherId string) bool {
	project, ok := l.store.FindProject(projectId)
	if !ok {
		return false
	}
	finisher, ok := l.store.FindUser(finisherId)
	if !ok {
		return false
	}

	l.store.MutateUser(finisherId, func(u *model.User) {
		if project.SwarmTokenReward > 0 {
			syncWalletBalance(u, u.SwarmTokens+project.SwarmTokenReward)
		}
		u.CompletedProjects++
	})

	l.store.MutateProject(projectId, func(p *model.Project) {
		p.Status = model.ProjectStatusCompleted
	})

	logger.Info("Distributed %d SWARM to %s for project %s",
		project.SwarmTokenReward, finisher.Id, projectId)

	l.events.Publish(event.Event{
		Type:       event.TypeTokensDistributed,
		UserId:     finisherId,
		ProjectId:  projectId,
		Amount:     project.SwarmTokenReward,
		OccurredAt: time.Now(),
	})

	return true
}
