package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort         = 8080
	defaultPriceAPIURL  = "https://api.coingecko.com/api/v3"
	defaultPriceTimeout = 5 * time.Second
)

// Config keeps the runtime configuration for the bot.
type Config struct {
	TelegramToken string
	Port          int
	TradesFile    string
	PriceAPIURL   string
	PriceTimeout  time.Duration
}

// Load reads configuration from environment variables. The Telegram token
// is the only required setting; everything else has a default.
// TRADES_FILE left empty keeps the ledger in-memory only.
func Load() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("PRICE_API_URL", defaultPriceAPIURL)
	viper.SetDefault("PRICE_TIMEOUT", defaultPriceTimeout)

	cfg := &Config{
		TelegramToken: viper.GetString("TELEGRAM_TOKEN"),
		Port:          viper.GetInt("PORT"),
		TradesFile:    viper.GetString("TRADES_FILE"),
		PriceAPIURL:   viper.GetString("PRICE_API_URL"),
		PriceTimeout:  viper.GetDuration("PRICE_TIMEOUT"),
	}

	if cfg.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_TOKEN is not set")
	}
	if cfg.PriceTimeout <= 0 {
		cfg.PriceTimeout = defaultPriceTimeout
	}

	return cfg, nil
}

// Addr renders the health server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
