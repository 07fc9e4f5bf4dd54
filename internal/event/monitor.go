package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

// Type 活动事件类型
type Type string

const (
	TypeProjectCreated    Type = "project_created"    // 任务发布
	TypeTokensDistributed Type = "tokens_distributed" // 奖励发放
	TypeTreasuryInvested  Type = "treasury_invested"  // 国库投资
)

// Event 业务变更事件
type Event struct {
	Type       Type
	UserId     string
	ProjectId  string
	Amount     int64
	OccurredAt time.Time
}

// Monitor 活动事件监控器：各业务变更发布事件，
// 经协程池消费后以系统消息的形式落入消息集合。
type Monitor struct {
	store  *repository.Store
	pool   *ants.Pool
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
}

// NewMonitor 创建事件监控器
func NewMonitor(store *repository.Store, poolSize, queueSize int) (*Monitor, error) {
	if poolSize <= 0 {
		poolSize = 4
	}
	if queueSize <= 0 {
		queueSize = 256
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create event pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		store:  store,
		pool:   pool,
		ch:     make(chan Event, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start 启动消费循环
func (m *Monitor) Start() {
	logger.Info("Starting activity event monitor")
	go m.loop()
}

// Stop 停止监控器并释放协程池
func (m *Monitor) Stop() {
	logger.Info("Stopping activity event monitor")
	m.cancel()
	m.pool.Release()
}

// Publish 发布事件，监控器未启用或队列满时丢弃
func (m *Monitor) Publish(e Event) {
	if m == nil {
		return
	}

	select {
	case m.ch <- e:
	default:
		logger.Warn("Event queue full, dropping %s event", e.Type)
	}
}

// loop 消费循环
func (m *Monitor) loop() {
	for {
		select {
		case <-m.ctx.Done():
			logger.Info("Event monitor stopped")
			return
		case e := <-m.ch:
			err := m.pool.Submit(func() {
				m.handle(e)
			})
			if err != nil {
				logger.Error("Failed to submit event to pool: %v", err)
			}
		}
	}
}

// handle 将事件转为系统消息
func (m *Monitor) handle(e Event) {
	var content string
	switch e.Type {
	case TypeProjectCreated:
		content = fmt.Sprintf("Mission deployed (fee %d SWARM)", e.Amount)
	case TypeTokensDistributed:
		content = fmt.Sprintf("Mission completed, %d SWARM distributed", e.Amount)
	case TypeTreasuryInvested:
		content = fmt.Sprintf("%d SWARM invested into the treasury", e.Amount)
	default:
		logger.Warn("Unknown event type: %s", e.Type)
		return
	}

	m.store.AddMessage(model.Message{
		Id:          uuid.NewString(),
		CreatedAt:   e.OccurredAt,
		SenderId:    model.SystemSenderId,
		RecipientId: e.UserId,
		ProjectId:   e.ProjectId,
		Content:     content,
	})

	logger.Debug("Recorded %s event for user %s", e.Type, e.UserId)
}
