package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/pagination"
	"github.com/nkchunduri/stock-tracker/internal/portfolio"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

// HoldingInput carries the fields of a new holding.
type HoldingInput struct {
	Symbol        string
	Exchange      string
	Quantity      int64
	PurchasePrice decimal.Decimal
	PurchaseDate  string
}

// HoldingUpdate carries the mutable fields of a holding.
type HoldingUpdate struct {
	Quantity      int64
	PurchasePrice decimal.Decimal
	PurchaseDate  string
}

// HoldingServicer defines the contract for holding persistence.
type HoldingServicer interface {
	CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error)
	ListHoldings(ctx context.Context) ([]models.Holding, error)
	GetHoldingByID(ctx context.Context, id uint) (*models.Holding, error)
	UpdateHolding(ctx context.Context, id uint, in HoldingUpdate) (*models.Holding, error)
	DeleteHolding(ctx context.Context, id uint) error
}

// AlertInput carries the fields of a new alert.
type AlertInput struct {
	Symbol      string
	TargetPrice decimal.Decimal
	AlertType   models.AlertType
}

// AlertServicer defines the contract for alert persistence.
type AlertServicer interface {
	CreateAlert(ctx context.Context, in AlertInput) (*models.Alert, error)
	ListActiveAlerts(ctx context.Context) ([]models.Alert, error)
	GetAlertByID(ctx context.Context, id uint) (*models.Alert, error)
	DeactivateAlert(ctx context.Context, id uint) error
}

// PriceHistoryInput is a single price observation to record.
type PriceHistoryInput struct {
	Symbol    string
	Price     decimal.Decimal
	Timestamp time.Time
}

// PriceHistoryServicer defines the contract for the price history log.
type PriceHistoryServicer interface {
	RecordPrices(ctx context.Context, entries []PriceHistoryInput) (int, error)
	GetPriceHistory(ctx context.Context, symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.PriceHistory], error)
}

// QuoteSource is the subset of the quote client the services need.
type QuoteSource interface {
	GetPrice(ctx context.Context, symbol, exchange string) (*models.PriceQuote, error)
	GetPrices(ctx context.Context, instruments []models.Instrument) []quote.Result
	Search(ctx context.Context, query string) []quote.SearchResult
}

// MarketDataServicer defines the contract for live quote lookups.
type MarketDataServicer interface {
	GetQuote(ctx context.Context, symbol, exchange string) (*models.PriceQuote, error)
	SearchSymbols(ctx context.Context, query string) ([]quote.SearchResult, error)
}

// PortfolioServicer defines the contract for valuing holdings at live prices.
type PortfolioServicer interface {
	GetEnrichedHoldings(ctx context.Context) ([]portfolio.EnrichedHolding, error)
	GetEnrichedHolding(ctx context.Context, id uint) (*portfolio.EnrichedHolding, error)
	GetSummary(ctx context.Context) (*portfolio.Summary, error)
}
