package chat

import "github.com/go-telegram/bot/models"

// Button labels are an informal protocol: Telegram sends the tapped
// label back as plain message text, so matching is literal.
const (
	btnNewTrade    = "🎯 NEW TRADE"
	btnDashboard   = "📊 DASHBOARD"
	btnJournal     = "📝 JOURNAL"
	btnPerformance = "💰 PERFORMANCE"
	btnCompound    = "🧮 COMPOUND"
	btnMainMenu    = "🏠 MAIN MENU"

	btnLong  = "LONG 📈"
	btnShort = "SHORT 📉"
)

// coins the trade flow offers. "Other" is open-ended and has no price.
var coins = []string{"BTC", "ETH", "SOL", "ADA", "AVAX", "Other"}

func isCoin(text string) bool {
	for _, c := range coins {
		if text == c {
			return true
		}
	}
	return false
}

func mainMenuKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]models.KeyboardButton{
			{{Text: btnNewTrade}, {Text: btnDashboard}},
			{{Text: btnJournal}, {Text: btnPerformance}},
			{{Text: btnCompound}},
		},
	}
}

func coinKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]models.KeyboardButton{
			{{Text: "BTC"}, {Text: "ETH"}, {Text: "SOL"}},
			{{Text: "ADA"}, {Text: "AVAX"}, {Text: "Other"}},
			{{Text: btnMainMenu}},
		},
	}
}

func directionKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]models.KeyboardButton{
			{{Text: btnLong}, {Text: btnShort}},
			{{Text: btnMainMenu}},
		},
	}
}

const welcomeText = `🚀 *Welcome to your Crypto Futures Journal!*

*Quick Commands:*
/start - Show this menu
/trade - Log new trade
/journal - View your trades
/performance - Your trading stats
/compound - Compounding example
/ping - Check the bot is alive

*Features:*
• One-tap trade logging
• Performance tracking
• Compound calculator

Tap 🎯 NEW TRADE to begin!`

const compoundText = `🧮 *Compound Calculator*

*Example:*
Starting: $10,000
Risk per Trade: 2%
Target Gain: 20% of risk
Win Rate: 60%

After 100 trades: ~$45,000
Growth: 350%

*Key Insight:*
Consistency + Risk Management = Compounding Magic!`
