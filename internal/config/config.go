package config

import (
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Treasury TreasuryConfig `mapstructure:"treasury"`
	Event    EventConfig    `mapstructure:"event"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// StorageConfig 持久化介质配置
type StorageConfig struct {
	// Backend 介质类型: file, postgres
	Backend string `mapstructure:"backend"`
	// DataDir file 介质的数据目录
	DataDir string `mapstructure:"data_dir"`
	// Postgres postgres 介质的连接配置
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// TreasuryConfig 国库配置
type TreasuryConfig struct {
	// GrowthInterval 模拟增值任务执行间隔（秒）
	GrowthInterval int `mapstructure:"growth_interval"`
}

// EventConfig 活动事件配置
type EventConfig struct {
	// PoolSize 事件处理协程池大小
	PoolSize int `mapstructure:"pool_size"`
	// QueueSize 事件队列长度
	QueueSize int `mapstructure:"queue_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/swarm")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.data_dir", "data")
	viper.SetDefault("storage.postgres.host", "localhost")
	viper.SetDefault("storage.postgres.port", 5432)
	viper.SetDefault("storage.postgres.user", "postgres")
	viper.SetDefault("storage.postgres.password", "")
	viper.SetDefault("storage.postgres.dbname", "swarm")
	viper.SetDefault("storage.postgres.sslmode", "disable")
	viper.SetDefault("treasury.growth_interval", 86400)
	viper.SetDefault("event.pool_size", 4)
	viper.SetDefault("event.queue_size", 256)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
