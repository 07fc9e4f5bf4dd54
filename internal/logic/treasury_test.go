package logic

import (
	"errors"
	"testing"

	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/model"
	"github.com/Agentic-Person/SwarmPrj-Meranda/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTreasury(t *testing.T) *TreasuryLogic {
	t.Helper()
	return NewTreasuryLogic(storage.NewMemoryMedium(), nil)
}

func TestTreasuryDefaults(t *testing.T) {
	tr := newTreasury(t)

	data := tr.GetData()
	assert.Equal(t, model.DefaultTreasuryTokens, data.TotalTokens)
	assert.Empty(t, data.UserInvestments)
}

func TestInvest(t *testing.T) {
	t.Run("additivity over sequential investments", func(t *testing.T) {
		tr := newTreasury(t)
		t0 := tr.GetData().TotalTokens

		require.True(t, tr.Invest("user-1", 300))
		require.True(t, tr.Invest("user-1", 200))

		data := tr.GetData()
		assert.True(t, data.UserInvestments["user-1"].Equal(decimal.NewFromInt(500)))
		assert.Equal(t, t0+500, data.TotalTokens)
	})

	t.Run("separate investors tracked separately", func(t *testing.T) {
		tr := newTreasury(t)

		require.True(t, tr.Invest("user-1", 100))
		require.True(t, tr.Invest("user-2", 250))

		data := tr.GetData()
		assert.True(t, data.UserInvestments["user-1"].Equal(decimal.NewFromInt(100)))
		assert.True(t, data.UserInvestments["user-2"].Equal(decimal.NewFromInt(250)))
	})

	t.Run("storage failure reports false", func(t *testing.T) {
		tr := NewTreasuryLogic(failingMedium{storage.NewMemoryMedium()}, nil)
		assert.False(t, tr.Invest("user-1", 100))
	})
}

func TestSimulateGrowth(t *testing.T) {
	t.Run("repeated growth compounds strictly", func(t *testing.T) {
		tr := newTreasury(t)
		require.True(t, tr.Invest("user-1", 1000))

		tr.SimulateGrowth()
		once := tr.UserInvestment("user-1")
		assert.True(t, once.GreaterThan(decimal.NewFromInt(1000)),
			"one growth round must strictly increase a positive investment")

		tr.SimulateGrowth()
		twice := tr.UserInvestment("user-1")
		assert.True(t, twice.GreaterThan(once),
			"second growth round must compound on the first")
	})

	t.Run("pool size is untouched by growth", func(t *testing.T) {
		tr := newTreasury(t)
		require.True(t, tr.Invest("user-1", 1000))
		total := tr.GetData().TotalTokens

		tr.SimulateGrowth()

		assert.Equal(t, total, tr.GetData().TotalTokens)
	})
}

func TestStats(t *testing.T) {
	tr := newTreasury(t)
	require.True(t, tr.Invest("user-1", 100))
	require.True(t, tr.Invest("user-2", 300))

	stats := tr.Stats()
	assert.Equal(t, 2, stats.TotalInvestors)
	assert.True(t, stats.AverageInvestment.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, model.DefaultTreasuryTokens+400, stats.TotalTokens)
}

func TestEstimatedAPY(t *testing.T) {
	tr := newTreasury(t)

	// 默认资金池 125000: 8 + 1.25*2 = 10.5
	assert.InDelta(t, 10.5, tr.EstimatedAPY(), 1e-9)

	// 足够大的资金池被钳制在 15
	require.True(t, tr.Invest("whale", 1000000))
	assert.InDelta(t, 15, tr.EstimatedAPY(), 1e-9)
}

// failingMedium 写入永远失败的介质
type failingMedium struct {
	storage.Medium
}

func (f failingMedium) Set(key string, value []byte) error {
	return errors.New("write failed")
}
