package ledger

import (
	"github.com/shopspring/decimal"

	"cfjournal/internal/model"
)

// Ledger is the append-only collection of completed trade records.
type Ledger interface {
	Append(rec model.TradeRecord) int64
	ListByOwner(owner int64) []model.TradeRecord
	Aggregate(owner int64) (Stats, bool)
	Len() int
	Owners() int
}

// Stats is the aggregate performance view for one owner, computed purely
// over the status and realized-PnL fields already on the records.
type Stats struct {
	Count       int
	OpenCount   int
	ClosedCount int
	WinRate     float64
	TotalPnL    decimal.Decimal
	AvgPnL      decimal.Decimal
}
