package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cfjournal/internal/model"
)

func newTrade(owner int64, coin string) model.TradeRecord {
	return model.TradeRecord{
		Owner:      owner,
		Coin:       coin,
		Direction:  model.DirectionLong,
		Size:       decimal.RequireFromString("0.1"),
		EntryPrice: decimal.NewFromInt(42000),
	}
}

func TestAppendAssignsDefaults(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())
	id := s.Append(newTrade(1, "BTC"))
	require.Equal(t, int64(1), id)

	records := s.ListByOwner(1)
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, model.StatusOpen, rec.Status)
	assert.True(t, rec.RealizedPnL.IsZero())
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, "BTC", rec.Coin)
}

func TestIdsStrictlyIncreasingAcrossOwners(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())
	var last int64
	for i := 0; i < 10; i++ {
		owner := int64(i%3 + 1)
		id := s.Append(newTrade(owner, "ETH"))
		assert.Greater(t, id, last)
		last = id
	}
	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 3, s.Owners())
}

func TestListByOwnerInsertionOrder(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())
	s.Append(newTrade(1, "BTC"))
	s.Append(newTrade(2, "SOL"))
	s.Append(newTrade(1, "ETH"))

	records := s.ListByOwner(1)
	require.Len(t, records, 2)
	assert.Equal(t, "BTC", records[0].Coin)
	assert.Equal(t, "ETH", records[1].Coin)
	assert.Empty(t, s.ListByOwner(99))
}

func TestAggregateNoTrades(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())
	_, ok := s.Aggregate(1)
	assert.False(t, ok)
}

func TestAggregateWinRateOnlyOverClosed(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())

	// Two open trades contribute nothing to win rate.
	s.Append(newTrade(1, "BTC"))
	s.Append(newTrade(1, "ETH"))

	closedWin := newTrade(1, "SOL")
	closedWin.Status = model.StatusClosed
	closedWin.RealizedPnL = decimal.NewFromInt(50)
	s.Append(closedWin)

	closedLoss := newTrade(1, "ADA")
	closedLoss.Status = model.StatusClosed
	closedLoss.RealizedPnL = decimal.NewFromInt(-30)
	s.Append(closedLoss)

	stats, ok := s.Aggregate(1)
	require.True(t, ok)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 2, stats.OpenCount)
	assert.Equal(t, 2, stats.ClosedCount)
	assert.InDelta(t, 50.0, stats.WinRate, 1e-9)
	assert.True(t, stats.TotalPnL.Equal(decimal.NewFromInt(20)))
	assert.True(t, stats.AvgPnL.Equal(decimal.NewFromInt(5)))
}

func TestAggregateWinRateZeroWithoutClosed(t *testing.T) {
	t.Parallel()

	s := NewStore("", zap.NewNop())
	s.Append(newTrade(1, "BTC"))

	stats, ok := s.Aggregate(1)
	require.True(t, ok)
	assert.Zero(t, stats.WinRate)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.json")

	s := NewStore(path, zap.NewNop())
	s.Append(newTrade(1, "BTC"))
	s.Append(newTrade(2, "ETH"))

	reloaded := NewStore(path, zap.NewNop())
	assert.Equal(t, 2, reloaded.Len())

	// Sequence resumes after the highest persisted id.
	id := reloaded.Append(newTrade(1, "SOL"))
	assert.Equal(t, int64(3), id)
}

func TestCorruptSnapshotStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s := NewStore(path, zap.NewNop())
	assert.Zero(t, s.Len())
	assert.Equal(t, int64(1), s.Append(newTrade(1, "BTC")))
}
