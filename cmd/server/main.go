package main

import (
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/config"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/event"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/router"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/scheduler"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	if err := logger.Init(cfg.Log.Level, cfg.Log.Output, cfg.Log.File); err != nil {
		logger.Fatal("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 初始化持久化介质
	medium, err := storage.NewMedium(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage medium: %v", err)
	}

	// 初始化仓库（介质为空时写入种子数据）
	store := repository.NewStore(medium)

	// 初始化事件监控器
	monitor, err := event.NewMonitor(store, cfg.Event.PoolSize, cfg.Event.QueueSize)
	if err != nil {
		logger.Fatal("Failed to initialize event monitor: %v", err)
	}
	monitor.Start()
	defer monitor.Stop()

	// 初始化业务逻辑
	ledgerLogic := logic.NewLedgerLogic(store, monitor)
	treasuryLogic := logic.NewTreasuryLogic(medium, monitor)
	authLogic := logic.NewAuthLogic(store, ledgerLogic)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(store, ledgerLogic, treasuryLogic, authLogic)

	// 启动定时任务
	manager := scheduler.Start(treasuryLogic, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
