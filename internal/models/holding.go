package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Exchange codes accepted for holdings and quotes.
const (
	ExchangeNSE = "NS"
	ExchangeBSE = "BO"
)

// Holding represents a recorded purchase of a quantity of a symbol.
type Holding struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Symbol        string          `gorm:"not null;index" json:"symbol"`
	Exchange      string          `gorm:"not null" json:"exchange"`
	Quantity      int64           `gorm:"not null" json:"quantity"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"purchase_price"`
	PurchaseDate  string          `gorm:"not null" json:"purchase_date"` // YYYY-MM-DD
	CreatedAt     time.Time       `json:"created_at"`
}

// Instrument is the symbol/exchange pair the quote source is queried with.
type Instrument struct {
	Symbol   string `json:"symbol"`
	Exchange string `json:"exchange"`
}

// Instrument returns the quote lookup key of the holding.
func (h Holding) Instrument() Instrument {
	return Instrument{Symbol: h.Symbol, Exchange: h.Exchange}
}
