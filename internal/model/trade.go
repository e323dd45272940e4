package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// TradeRecord is one journal entry. Records are immutable once appended
// and are never deleted.
type TradeRecord struct {
	ID          int64           `json:"id"`
	Owner       int64           `json:"owner"`
	Coin        string          `json:"coin"`
	Direction   Direction       `json:"direction"`
	Size        decimal.Decimal `json:"size"`
	EntryPrice  decimal.Decimal `json:"entry_price"`
	Status      Status          `json:"status"`
	RealizedPnL decimal.Decimal `json:"realized_pnl"`
	CreatedAt   time.Time       `json:"created_at"`
}
