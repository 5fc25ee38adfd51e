package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote is a point-in-time price observation from the quote source.
// Quotes are fetched per request and never stored by the enrichment path.
type PriceQuote struct {
	Symbol        string          `json:"symbol"`
	Exchange      string          `json:"exchange"`
	Price         decimal.Decimal `json:"price"`
	PreviousClose decimal.Decimal `json:"previous_close"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
}

// PriceHistory is a persisted price observation.
// This is append-only time-series data.
type PriceHistory struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Symbol    string          `gorm:"not null;index:idx_price_history_symbol_ts" json:"symbol"`
	Price     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"price"`
	Timestamp time.Time       `gorm:"not null;index:idx_price_history_symbol_ts" json:"timestamp"`
}

// TableName keeps the singular table name used by the migrations.
func (PriceHistory) TableName() string { return "price_history" }
