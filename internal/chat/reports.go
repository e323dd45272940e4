package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const journalTail = 5

// journal renders the caller's most recent trades.
func (r *Router) journal(chatID int64) []Outgoing {
	records := r.trades.ListByOwner(chatID)
	if len(records) == 0 {
		return []Outgoing{{Text: "No trades recorded yet."}}
	}
	if len(records) > journalTail {
		records = records[len(records)-journalTail:]
	}

	var b strings.Builder
	b.WriteString("📝 *Your Trading Journal*\n")
	for _, rec := range records {
		fmt.Fprintf(&b, `
• %s %s
  Entry: $%s
  P&L: $%s
  Time: %s
────────────────────
`,
			rec.Coin, strings.ToUpper(string(rec.Direction)),
			rec.EntryPrice.StringFixed(2),
			rec.RealizedPnL.StringFixed(2),
			rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	return []Outgoing{{Text: b.String(), Markdown: true}}
}

func (r *Router) performance(chatID int64) []Outgoing {
	stats, ok := r.trades.Aggregate(chatID)
	if !ok {
		return []Outgoing{{Text: "No trades to analyze."}}
	}

	text := fmt.Sprintf(`💰 *Performance Summary*

Total Trades: %d
Open: %d | Closed: %d
Win Rate: %.1f%%
Total P&L: $%s
Avg P&L per Trade: $%s

*Keep trading consistently!*`,
		stats.Count, stats.OpenCount, stats.ClosedCount, stats.WinRate,
		stats.TotalPnL.StringFixed(2), stats.AvgPnL.StringFixed(2))

	return []Outgoing{{Text: text, Markdown: true}}
}

// dashboard shows reference prices for the coin set plus the caller's
// quick stats. Fallback prices are marked so stale context is visible.
func (r *Router) dashboard(ctx context.Context, chatID int64) []Outgoing {
	var b strings.Builder
	b.WriteString("📊 *Dashboard*\n\n*Market*\n")
	for _, coin := range coins {
		if coin == "Other" {
			continue
		}
		quote := r.prices.Quote(ctx, coin)
		mark := ""
		if !quote.Live {
			mark = " (last known)"
		}
		fmt.Fprintf(&b, "%s: $%s%s\n", coin, quote.Price.StringFixed(2), mark)
	}

	b.WriteString("\n*Your Journal*\n")
	if stats, ok := r.trades.Aggregate(chatID); ok {
		fmt.Fprintf(&b, "Trades: %d (%d open)\n", stats.Count, stats.OpenCount)
	} else {
		b.WriteString("No trades yet.\n")
	}
	fmt.Fprintf(&b, "Time: %s", time.Now().Format("15:04"))

	return []Outgoing{{Text: b.String(), Markdown: true}}
}
