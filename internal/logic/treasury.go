package logic

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/event"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/shopspring/decimal"
)

// TreasuryLogic 国库资金池。投资与可花费余额是两本独立的账：
// 投资额只进入资金池，增值只作用于投资额，从不回写用户余额。
type TreasuryLogic struct {
	mu     sync.Mutex
	medium storage.Medium
	events *event.Monitor
}

// NewTreasuryLogic 创建国库逻辑
func NewTreasuryLogic(medium storage.Medium, events *event.Monitor) *TreasuryLogic {
	return &TreasuryLogic{
		medium: medium,
		events: events,
	}
}

// load 读取国库单例，介质为空或损坏时返回默认值
func (t *TreasuryLogic) load() model.TreasuryData {
	data := storage.Load(t.medium, storage.KeyTreasury, model.NewDefaultTreasury())
	if data.UserInvestments == nil {
		data.UserInvestments = map[string]decimal.Decimal{}
	}
	return data
}

// GetData 返回当前国库数据
func (t *TreasuryLogic) GetData() model.TreasuryData {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load()
}

// Invest 投资 SWARM 到国库：用户投资额与资金池总量同时累加。
// 仅在持久化失败时返回 false。
func (t *TreasuryLogic) Invest(userId string, amount int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	data := t.load()

	delta := decimal.NewFromInt(amount)
	data.UserInvestments[userId] = data.UserInvestments[userId].Add(delta)
	data.TotalTokens += amount
	data.LastUpdated = time.Now()

	if err := storage.Save(t.medium, storage.KeyTreasury, data); err != nil {
		logger.Error("Failed to process treasury investment: %v", err)
		return false
	}

	t.events.Publish(event.Event{
		Type:       event.TypeTreasuryInvested,
		UserId:     userId,
		Amount:     amount,
		OccurredAt: data.LastUpdated,
	})

	return true
}

// UserInvestment 返回用户在国库中的累计投资额
func (t *TreasuryLogic) UserInvestment(userId string) decimal.Decimal {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load().UserInvestments[userId]
}

// SimulateGrowth 模拟国库增值：对每个用户的投资额应用同一随机增长率
// （单次 0.1%~0.5%），重复调用会复利累积。资金池总量不变。
func (t *TreasuryLogic) SimulateGrowth() {
	t.mu.Lock()
	defer t.mu.Unlock()

	data := t.load()

	growthRate := 0.001 + rand.Float64()*0.004
	factor := decimal.NewFromFloat(1 + growthRate)

	for userId := range data.UserInvestments {
		data.UserInvestments[userId] = data.UserInvestments[userId].Mul(factor)
	}

	data.LastUpdated = time.Now()
	storage.Save(t.medium, storage.KeyTreasury, data)

	logger.Debug("Treasury growth applied, rate %.4f over %d investments",
		growthRate, len(data.UserInvestments))
}

// TreasuryStats 国库统计
type TreasuryStats struct {
	TotalTokens       int64           `json:"totalTokens"`
	TotalInvestors    int             `json:"totalInvestors"`
	AverageInvestment decimal.Decimal `json:"averageInvestment"`
	LastUpdated       time.Time       `json:"lastUpdated"`
}

// Stats 返回国库统计信息
func (t *TreasuryLogic) Stats() TreasuryStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	data := t.load()

	total := decimal.Zero
	for _, inv := range data.UserInvestments {
		total = total.Add(inv)
	}

	investors := len(data.UserInvestments)
	average := decimal.Zero
	if investors > 0 {
		average = total.Div(decimal.NewFromInt(int64(investors)))
	}

	return TreasuryStats{
		TotalTokens:       data.TotalTokens,
		TotalInvestors:    investors,
		AverageInvestment: average,
		LastUpdated:       data.LastUpdated,
	}
}

// EstimatedAPY 展示用年化收益率估算，由资金池规模推导，不修改任何状态
func (t *TreasuryLogic) EstimatedAPY() float64 {
	data := t.GetData()

	apy := 8 + float64(data.TotalTokens)/100000*2
	if apy > 15 {
		apy = 15
	}
	return apy
}

// Clear 删除国库持久化数据（测试用）
func (t *TreasuryLogic) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.medium.Delete(storage.KeyTreasury)
}
