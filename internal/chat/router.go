package chat

import (
	"context"
	"strings"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"cfjournal/internal/ledger"
	"cfjournal/internal/model"
	"cfjournal/internal/pricing"
	"cfjournal/internal/session"
)

// Outgoing is one reply message the router wants sent.
type Outgoing struct {
	Text     string
	Keyboard *models.ReplyKeyboardMarkup
	Markdown bool
}

func menuReply(text string) Outgoing {
	return Outgoing{Text: text, Keyboard: mainMenuKeyboard()}
}

// Router maps one inbound text message to replies. Dispatch order is
// fixed: session step first, then slash commands, then button labels,
// then an unrecognized-input reply. Registration order never matters.
type Router struct {
	sessions session.Store
	trades   ledger.Ledger
	prices   pricing.Source
	log      *zap.Logger
}

func NewRouter(sessions session.Store, trades ledger.Ledger, prices pricing.Source, log *zap.Logger) *Router {
	return &Router{sessions: sessions, trades: trades, prices: prices, log: log}
}

// Route handles one message for a chat and returns the replies to send.
func (r *Router) Route(ctx context.Context, chatID int64, text string) []Outgoing {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if sess, ok := r.sessions.Get(chatID); ok && sess.Step != model.StepNone {
		return r.routeStep(ctx, chatID, sess, text)
	}
	if out, ok := r.routeCommand(ctx, chatID, text); ok {
		return out
	}
	if out, ok := r.routeButton(ctx, chatID, text); ok {
		return out
	}

	r.log.Info("unrecognized input", zap.Int64("chat_id", chatID), zap.String("text", text))
	return []Outgoing{menuReply("I didn't recognize that. Pick an option from the menu below.")}
}

func (r *Router) routeCommand(ctx context.Context, chatID int64, text string) ([]Outgoing, bool) {
	switch text {
	case "/start", "/help":
		return []Outgoing{{Text: welcomeText, Keyboard: mainMenuKeyboard(), Markdown: true}}, true
	case "/trade":
		return r.startTrade(ctx, chatID), true
	case "/journal":
		return r.journal(chatID), true
	case "/performance":
		return r.performance(chatID), true
	case "/compound":
		return []Outgoing{{Text: compoundText, Markdown: true}}, true
	case "/ping":
		return []Outgoing{{Text: "🏓 Pong! The bot is alive."}}, true
	}
	return nil, false
}

func (r *Router) routeButton(ctx context.Context, chatID int64, text string) ([]Outgoing, bool) {
	switch text {
	case btnNewTrade:
		return r.startTrade(ctx, chatID), true
	case btnDashboard:
		return r.dashboard(ctx, chatID), true
	case btnJournal:
		return r.journal(chatID), true
	case btnPerformance:
		return r.performance(chatID), true
	case btnCompound:
		return []Outgoing{{Text: compoundText, Markdown: true}}, true
	case btnMainMenu:
		return []Outgoing{menuReply("Main menu:")}, true
	}
	return nil, false
}
