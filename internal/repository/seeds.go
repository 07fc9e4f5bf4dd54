package repository

import (
	"time"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
)

// 演示用户的固定钱包地址
var demoWalletAddresses = map[string]string{
	"user-1": "0x742d35Cc6634C0532925a3b8D4C2C4e4C4C4C4C4",
	"user-2": "0x8ba1f109551bD432803012645Hac189451c4c4c4",
	"user-3": "0x1234567890abcdef1234567890abcdef12345678",
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultUsers 种子用户数据，介质为空时使用
func DefaultUsers() []model.User {
	return []model.User{
		{
			Id:                  "user-1",
			Name:                "Alex Chen",
			Email:               "alex@example.com",
			Role:                model.UserRoleCreator,
			Bio:                 "Full-stack developer with 8+ years experience building scalable web applications.",
			Rating:              4.8,
			ReviewCount:         23,
			CompletedProjects:   15,
			CreatedAt:           date(2023, time.January, 15),
			AgentName:           "CodeMaster Alex",
			PrimaryRole:         "builder",
			OnboardingCompleted: true,
			SwarmTokens:         1000,
			Wallet:              model.NewPlaceholderWallet(demoWalletAddresses["user-1"], 1000),
		},
		{
			Id:                  "user-2",
			Name:                "Sarah Johnson",
			Email:               "sarah@example.com",
			Role:                model.UserRoleFinisher,
			Skills:              []string{"React", "TypeScript", "Node.js", "PostgreSQL"},
			Bio:                 "Frontend specialist who loves creating beautiful, accessible user interfaces.",
			Rating:              4.9,
			ReviewCount:         31,
			CompletedProjects:   22,
			CreatedAt:           date(2023, time.February, 20),
			AgentName:           "UI Wizard Sarah",
			PrimaryRole:         "validator",
			OnboardingCompleted: true,
			SwarmTokens:         3200,
			Wallet:              model.NewPlaceholderWallet(demoWalletAddresses["user-2"], 3200),
		},
		{
			Id:                  "user-3",
			Name:                "Marcus Rodriguez",
			Email:               "marcus@example.com",
			Role:                model.UserRoleFinisher,
			Skills:              []string{"Python", "Django", "React", "AWS"},
			Bio:                 "Backend engineer passionate about clean code and system architecture.",
			Rating:              4.7,
			ReviewCount:         18,
			CompletedProjects:   12,
			CreatedAt:           date(2023, time.March, 10),
			AgentName:           "Backend Beast Marcus",
			PrimaryRole:         "approver",
			OnboardingCompleted: true,
			SwarmTokens:         1800,
			Wallet:              model.NewPlaceholderWallet(demoWalletAddresses["user-3"], 1800),
		},
	}
}

// DefaultProjects 种子项目数据
func DefaultProjects() []model.Project {
	return []model.Project{
		{
			Id:               "project-1",
			Title:            "E-commerce Dashboard Enhancement",
			Description:      "Need to add real-time analytics and improve the user management interface for our e-commerce platform.",
			DesiredOutcome:   "A modern dashboard with live sales data, user activity tracking, and improved admin controls.",
			Platform:         "bolt.new",
			AppLink:          "https://demo-ecommerce.example.com",
			Budget:           150,
			SwarmTokenReward: 150,
			Status:           model.ProjectStatusInProgress,
			CreatorId:        "user-1",
			FinisherId:       "user-2",
			CreatedAt:        date(2024, time.January, 10),
			UpdatedAt:        date(2024, time.January, 12),
			Brief: &model.ProjectBrief{
				Id:                "brief-1",
				ProjectId:         "project-1",
				IdentifiedIssue:   "Dashboard lacks real-time data visualization and user management is cumbersome",
				SuspectedLocation: "Admin dashboard components and user management modules",
				ActionableSteps: []string{
					"Implement WebSocket connection for real-time data",
					"Redesign user management interface with better UX",
					"Add analytics charts and KPI widgets",
					"Optimize database queries for dashboard performance",
				},
				DefinitionOfDone: "Dashboard shows live data updates, user management is intuitive, and page load time is under 2 seconds",
				CreatedAt:        date(2024, time.January, 10),
			},
		},
		{
			Id:               "project-2",
			Title:            "Mobile App Authentication System",
			Description:      "Implement secure user authentication with social login options and two-factor authentication.",
			DesiredOutcome:   "Complete authentication system with email/password, Google/Apple sign-in, and 2FA support.",
			Platform:         "flutterflow",
			AppLink:          "https://github.com/example/mobile-auth",
			Budget:           120,
			SwarmTokenReward: 120,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-1",
			CreatedAt:        date(2024, time.January, 8),
			UpdatedAt:        date(2024, time.January, 8),
		},
		{
			Id:               "project-3",
			Title:            "AI-Powered Content Recommendation Engine",
			Description:      "Build a machine learning system that analyzes user behavior and recommends personalized content.",
			DesiredOutcome:   "ML model that increases user engagement by 40% through personalized recommendations.",
			Platform:         "bolt.new",
			AppLink:          "https://content-platform.example.com",
			Budget:           200,
			SwarmTokenReward: 200,
			Status:           model.ProjectStatusInProgress,
			CreatorId:        "user-1",
			FinisherId:       "user-3",
			CreatedAt:        date(2024, time.January, 5),
			UpdatedAt:        date(2024, time.January, 7),
		},
		{
			Id:               "project-4",
			Title:            "Real-time Chat Application",
			Description:      "Create a modern chat application with file sharing, emoji reactions, and group messaging.",
			DesiredOutcome:   "Fully functional chat app with real-time messaging, file uploads, and user presence indicators.",
			Platform:         "bubble",
			AppLink:          "https://chat-app.example.com",
			Budget:           80,
			SwarmTokenReward: 80,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-2",
			CreatedAt:        date(2024, time.January, 12),
			UpdatedAt:        date(2024, time.January, 12),
		},
		{
			Id:               "project-5",
			Title:            "Blockchain Voting System",
			Description:      "Develop a secure, transparent voting system using blockchain technology for organizational governance.",
			DesiredOutcome:   "Decentralized voting platform with immutable records and real-time vote tracking.",
			Platform:         "webflow",
			AppLink:          "https://voting-platform.example.com",
			Budget:           300,
			SwarmTokenReward: 300,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-1",
			CreatedAt:        date(2024, time.January, 15),
			UpdatedAt:        date(2024, time.January, 15),
		},
		{
			Id:               "project-6",
			Title:            "IoT Device Management Dashboard",
			Description:      "Create a comprehensive dashboard for monitoring and controlling IoT devices across multiple locations.",
			DesiredOutcome:   "Real-time device monitoring, remote control capabilities, and automated alert system.",
			Platform:         "bolt.new",
			AppLink:          "https://iot-dashboard.example.com",
			Budget:           180,
			SwarmTokenReward: 180,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-2",
			CreatedAt:        date(2024, time.January, 14),
			UpdatedAt:        date(2024, time.January, 14),
		},
		{
			Id:               "project-7",
			Title:            "Let's build a handy to-do list",
			Description:      "Too many unorganized tasks to do. I need a very easy, simple to use, to-do task list that's AI-enabled.",
			DesiredOutcome:   "A clean, intuitive to-do list application with AI assistance for task organization and prioritization.",
			Platform:         "bolt.new",
			AppLink:          "https://todo-app-v1.example.com",
			Budget:           50,
			SwarmTokenReward: 50,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-1",
			CreatedAt:        date(2024, time.January, 16),
			UpdatedAt:        date(2024, time.January, 16),
		},
		{
			Id:               "project-8",
			Title:            "A blockchain to-do list.",
			Description:      "I need a handy to-do list that just is focused on my blockchain trades.",
			DesiredOutcome:   "A specialized to-do list for tracking blockchain trades, portfolio management, and crypto-related tasks.",
			Platform:         "bolt.new",
			AppLink:          "https://blockchain-todo.example.com",
			Budget:           100,
			SwarmTokenReward: 100,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-1",
			CreatedAt:        date(2024, time.January, 17),
			UpdatedAt:        date(2024, time.January, 17),
		},
		{
			Id:               "project-9",
			Title:            "Let's build a handy to-do list",
			Description:      "I want to create a simple to-do list with AI assistant that when I create a schedule and I don't get everything done, it's easy to reschedule.",
			DesiredOutcome:   "An AI-powered to-do list that automatically reschedules incomplete tasks and provides smart suggestions for task management.",
			Platform:         "bolt.new",
			AppLink:          "https://smart-todo.example.com",
			Budget:           75,
			SwarmTokenReward: 75,
			Status:           model.ProjectStatusOpen,
			CreatorId:        "user-1",
			CreatedAt:        date(2024, time.January, 18),
			UpdatedAt:        date(2024, time.January, 18),
		},
	}
}
