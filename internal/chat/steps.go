package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cfjournal/internal/model"
)

// startTrade opens a fresh trade-entry flow, replacing any partial one.
// The reference price is decoration; a degraded lookup just changes the
// intro message.
func (r *Router) startTrade(ctx context.Context, chatID int64) []Outgoing {
	r.sessions.Put(model.Session{ChatID: chatID, Step: model.StepCoin})

	var out []Outgoing
	if quote := r.prices.Quote(ctx, "BTC"); quote.Live {
		out = append(out, Outgoing{
			Markdown: true,
			Text: fmt.Sprintf("📊 *Market Context*\nBTC: $%s\nTime: %s\n\n*Ready to log your trade!*",
				quote.Price.StringFixed(2), time.Now().Format("15:04")),
		})
	} else {
		out = append(out, Outgoing{Text: "Let's log your trade!"})
	}

	return append(out, Outgoing{Text: "Select coin:", Keyboard: coinKeyboard()})
}

// routeStep owns every message while a session is in flight. Abandon and
// restart are checked first so they work at any step.
func (r *Router) routeStep(ctx context.Context, chatID int64, sess model.Session, text string) []Outgoing {
	switch text {
	case btnMainMenu:
		r.sessions.Delete(chatID)
		return []Outgoing{menuReply("Trade discarded. Main menu:")}
	case btnNewTrade, "/trade":
		return r.startTrade(ctx, chatID)
	}

	switch sess.Step {
	case model.StepCoin:
		return r.handleCoin(chatID, sess, text)
	case model.StepDirection:
		return r.handleDirection(chatID, sess, text)
	case model.StepSize:
		return r.handleSize(chatID, sess, text)
	case model.StepEntry:
		return r.handleEntry(chatID, sess, text)
	}

	// Unknown step means a stale session; drop it.
	r.sessions.Delete(chatID)
	return []Outgoing{menuReply("Main menu:")}
}

func (r *Router) handleCoin(chatID int64, sess model.Session, text string) []Outgoing {
	if !isCoin(text) {
		return []Outgoing{{Text: "Please pick a coin from the keyboard:", Keyboard: coinKeyboard()}}
	}

	sess.Coin = text
	sess.Step = model.StepDirection
	r.sessions.Put(sess)

	return []Outgoing{{Text: text + " - Select position:", Keyboard: directionKeyboard()}}
}

func (r *Router) handleDirection(chatID int64, sess model.Session, text string) []Outgoing {
	direction, ok := parseDirection(text)
	if !ok {
		return []Outgoing{{Text: "Please pick LONG or SHORT:", Keyboard: directionKeyboard()}}
	}

	sess.Direction = direction
	sess.Step = model.StepSize
	r.sessions.Put(sess)

	return []Outgoing{{Text: fmt.Sprintf("Position: %s\n\nEnter position size (e.g., 0.1):",
		strings.ToUpper(string(direction)))}}
}

func (r *Router) handleSize(chatID int64, sess model.Session, text string) []Outgoing {
	size, ok := parsePositiveDecimal(text)
	if !ok {
		return []Outgoing{{Text: "That doesn't look like a number. Enter position size (e.g., 0.1):"}}
	}

	sess.Size = size
	sess.Step = model.StepEntry
	r.sessions.Put(sess)

	return []Outgoing{{Text: fmt.Sprintf("Size: %s\n\nEnter entry price (e.g., 42000):", size.String())}}
}

func (r *Router) handleEntry(chatID int64, sess model.Session, text string) []Outgoing {
	entry, ok := parsePositiveDecimal(text)
	if !ok {
		return []Outgoing{{Text: "That doesn't look like a number. Enter entry price (e.g., 42000):"}}
	}

	id := r.trades.Append(model.TradeRecord{
		Owner:      chatID,
		Coin:       sess.Coin,
		Direction:  sess.Direction,
		Size:       sess.Size,
		EntryPrice: entry,
	})
	r.sessions.Delete(chatID)

	summary := fmt.Sprintf(`✅ *Trade #%d logged!*

Coin: %s
Position: %s
Size: %s
Entry: $%s
Status: open`,
		id, sess.Coin, strings.ToUpper(string(sess.Direction)), sess.Size.String(), entry.String())

	return []Outgoing{{Text: summary, Keyboard: mainMenuKeyboard(), Markdown: true}}
}

func parseDirection(text string) (model.Direction, bool) {
	switch {
	case text == btnLong, strings.EqualFold(text, "long"):
		return model.DirectionLong, true
	case text == btnShort, strings.EqualFold(text, "short"):
		return model.DirectionShort, true
	}
	return "", false
}

// parsePositiveDecimal accepts "," as a decimal separator.
func parsePositiveDecimal(text string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(text), ",", "."))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
