package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // market timezone must resolve on hosts without zoneinfo

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Quote source
	QuoteChartURL      string
	QuoteSearchURL     string
	QuoteTimeout       time.Duration
	QuoteMaxConcurrent int

	// Alert evaluation
	AlertInterval      time.Duration
	AlertExchange      string
	MarketTimezone     string
	MarketOpen         time.Duration // offset from local midnight
	MarketClose        time.Duration // offset from local midnight
	MarketWeekdaysOnly bool
	RecordPriceHistory bool

	// Presentation
	SummaryCurrency string
}

// Load loads configuration from the environment, reading a .env file first
// when one exists. Malformed values are reported as errors rather than
// silently replaced.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:            getEnv("PORT", "3001"),
		Env:             getEnv("ENV", "development"),
		QuoteChartURL:   strings.TrimRight(getEnv("QUOTE_CHART_URL", "https://query1.finance.yahoo.com/v8/finance/chart"), "/"),
		QuoteSearchURL:  getEnv("QUOTE_SEARCH_URL", "https://query2.finance.yahoo.com/v1/finance/search"),
		AlertExchange:   strings.ToUpper(strings.TrimSpace(getEnv("ALERT_EXCHANGE", "NS"))),
		MarketTimezone:  getEnv("MARKET_TIMEZONE", "Asia/Kolkata"),
		SummaryCurrency: strings.ToUpper(getEnv("SUMMARY_CURRENCY", "INR")),
	}

	var err error
	if config.QuoteTimeout, err = parseDuration("QUOTE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if config.QuoteMaxConcurrent, err = parsePositiveInt("QUOTE_MAX_CONCURRENT", 5); err != nil {
		return nil, err
	}
	if config.AlertInterval, err = parseDuration("ALERT_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if config.MarketOpen, err = parseClock("MARKET_OPEN", "09:15"); err != nil {
		return nil, err
	}
	if config.MarketClose, err = parseClock("MARKET_CLOSE", "15:30"); err != nil {
		return nil, err
	}
	if config.MarketClose < config.MarketOpen {
		return nil, fmt.Errorf("MARKET_CLOSE must not be earlier than MARKET_OPEN")
	}
	if config.MarketWeekdaysOnly, err = parseBool("MARKET_WEEKDAYS_ONLY", false); err != nil {
		return nil, err
	}
	if config.RecordPriceHistory, err = parseBool("RECORD_PRICE_HISTORY", false); err != nil {
		return nil, err
	}
	if config.AlertExchange != "NS" && config.AlertExchange != "BO" {
		return nil, fmt.Errorf("invalid ALERT_EXCHANGE %q: must be NS or BO", config.AlertExchange)
	}
	if _, err := time.LoadLocation(config.MarketTimezone); err != nil {
		return nil, fmt.Errorf("invalid MARKET_TIMEZONE %q: %w", config.MarketTimezone, err)
	}
	if money.GetCurrency(config.SummaryCurrency) == nil {
		return nil, fmt.Errorf("invalid SUMMARY_CURRENCY %q: unknown currency code", config.SummaryCurrency)
	}

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func parsePositiveInt(key string, defaultValue int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func parseBool(key string, defaultValue bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s: must be true, false, 1, or 0, got %q", key, s)
	}
}

// parseClock parses an HH:MM wall-clock value into an offset from midnight.
func parseClock(key, defaultValue string) (time.Duration, error) {
	s := getEnv(key, defaultValue)
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: expected HH:MM", key, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
