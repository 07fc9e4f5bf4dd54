package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreasuryData 国库资金池（单例聚合，独立持久化）
type TreasuryData struct {
	TotalTokens     int64                      `json:"totalTokens"`
	UserInvestments map[string]decimal.Decimal `json:"userInvestments"`
	LastUpdated     time.Time                  `json:"lastUpdated"`
}

// DefaultTreasuryTokens 国库初始资金池大小
const DefaultTreasuryTokens int64 = 125000

// NewDefaultTreasury 返回默认国库数据
func NewDefaultTreasury() TreasuryData {
	return TreasuryData{
		TotalTokens:     DefaultTreasuryTokens,
		UserInvestments: map[string]decimal.Decimal{},
		LastUpdated:     time.Now(),
	}
}
