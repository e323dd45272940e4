package model

import "github.com/shopspring/decimal"

// Step identifies the trade field currently being collected for a chat.
type Step int

const (
	StepNone Step = iota
	StepCoin
	StepDirection
	StepSize
	StepEntry
)

// Session is the transient per-chat record of an in-progress trade-entry
// flow. A session exists if and only if the flow is incomplete.
type Session struct {
	ChatID    int64
	Step      Step
	Coin      string
	Direction Direction
	Size      decimal.Decimal
}
