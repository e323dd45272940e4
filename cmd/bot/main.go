package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"cfjournal/internal/chat"
	"cfjournal/internal/config"
	"cfjournal/internal/ledger"
	"cfjournal/internal/pricing"
	"cfjournal/internal/session"
	"cfjournal/internal/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	trades := ledger.NewStore(cfg.TradesFile, logger)
	sessions := session.NewMemoryStore()
	prices := pricing.NewCoinGecko(cfg.PriceAPIURL, cfg.PriceTimeout, logger)
	router := chat.NewRouter(sessions, trades, prices, logger)

	opts := []bot.Option{
		bot.WithDefaultHandler(router.Handler()),
		bot.WithMiddlewares(router.LogUpdates),
	}
	b, err := bot.New(cfg.TelegramToken, opts...)
	if err != nil {
		logger.Fatal("init bot", zap.Error(err))
	}

	web.New(cfg.Addr(), trades, logger).Start(ctx)

	logger.Info("bot starting", zap.Int("port", cfg.Port))
	b.Start(ctx)

	logger.Info("bot stopped")
}
