package scheduler

import (
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/config"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/go-co-op/gocron/v2"
)

// TreasuryGrowthJob 国库增值任务
type TreasuryGrowthJob struct {
	treasury *logic.TreasuryLogic
	config   *config.Config
}

// NewTreasuryGrowthJob 创建国库增值任务
func NewTreasuryGrowthJob(treasury *logic.TreasuryLogic, cfg *config.Config) *TreasuryGrowthJob {
	return &TreasuryGrowthJob{
		treasury: treasury,
		config:   cfg,
	}
}

// GetName 获取任务名称
func (j *TreasuryGrowthJob) GetName() string {
	return "treasury_growth"
}

// GetSchedule 获取调度配置
func (j *TreasuryGrowthJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Treasury.GrowthInterval) * time.Second)
}

// Execute 执行任务
func (j *TreasuryGrowthJob) Execute() {
	logger.Info("Starting treasury growth task")

	j.treasury.SimulateGrowth()

	stats := j.treasury.Stats()
	logger.Info("Treasury growth completed. %d investors, pool %d tokens",
		stats.TotalInvestors, stats.TotalTokens)
}
