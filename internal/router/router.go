package router

import (
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/handler"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logic"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/repository"
	"github.com/gin-gonic/gin"
)

func Setup(store *repository.Store, ledgerLogic *logic.LedgerLogic, treasuryLogic *logic.TreasuryLogic, authLogic *logic.AuthLogic) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "swarm-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		// 会话相关路由
		authHandler := handler.NewAuthHandler(authLogic)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.GET("/session", authHandler.Session)
			auth.PUT("/session", authHandler.UpdateSession)
			auth.POST("/logout", authHandler.Logout)
		}

		// 用户相关路由
		userHandler := handler.NewUserHandler(store, ledgerLogic)
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)
			users.GET("/:id/wallet", userHandler.GetWallet)
			users.PUT("/:id/balance", userHandler.SetBalance)
		}

		// 项目相关路由
		projectHandler := handler.NewProjectHandler(store, ledgerLogic, authLogic)
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.DeployMission)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.POST("/:id/distribute", projectHandler.DistributeTokens)
		}

		// 国库相关路由
		treasuryHandler := handler.NewTreasuryHandler(treasuryLogic, authLogic)
		treasury := v1.Group("/treasury")
		{
			treasury.GET("", treasuryHandler.GetTreasury)
			treasury.GET("/stats", treasuryHandler.GetStats)
			treasury.GET("/investments/:id", treasuryHandler.GetInvestment)
			treasury.POST("/invest", treasuryHandler.Invest)
			treasury.POST("/simulate-growth", treasuryHandler.SimulateGrowth)
		}

		// 消息与评价路由
		feedHandler := handler.NewFeedHandler(store)
		v1.GET("/messages", feedHandler.GetMessages)
		v1.POST("/messages", feedHandler.AddMessage)
		v1.GET("/reviews", feedHandler.GetReviews)
		v1.POST("/reviews", feedHandler.AddReview)

		// 数据管理路由（演示/测试用）
		admin := v1.Group("/store")
		{
			admin.POST("/refresh", feedHandler.RefreshStore)
			admin.POST("/clear", feedHandler.ClearStore)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
