package storage

import (
	"errors"
	"fmt"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// kvRecord 键值快照表
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value;type:jsonb"`
}

// TableName 自定义表名
func (kvRecord) TableName() string {
	return "kv_snapshot"
}

// GormMedium postgres 介质，所有快照存放在单张键值表中
type GormMedium struct {
	db *gorm.DB
}

// NewGormMedium 连接数据库并迁移快照表
func NewGormMedium(cfg config.PostgresConfig) (*GormMedium, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent), // 禁用 GORM 的默认日志输出
		NamingStrategy: &schema.NamingStrategy{
			SingularTable: true, // 禁用复数表名
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 自动迁移
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &GormMedium{db: db}, nil
}

func (m *GormMedium) Get(key string) ([]byte, error) {
	var record kvRecord
	if err := m.db.First(&record, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return record.Value, nil
}

func (m *GormMedium) Set(key string, value []byte) error {
	record := kvRecord{Key: key, Value: value}
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record).Error
}

func (m *GormMedium) Delete(key string) error {
	return m.db.Delete(&kvRecord{}, "key = ?", key).Error
}

func (m *GormMedium) Keys() ([]string, error) {
	var keys []string
	if err := m.db.Model(&kvRecord{}).Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
