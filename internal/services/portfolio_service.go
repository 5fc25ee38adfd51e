package services

import (
	"context"

	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/portfolio"
)

// portfolioService values holdings at live prices.
type portfolioService struct {
	holdings HoldingServicer
	quotes   QuoteSource
	currency string
}

// NewPortfolioService creates a new PortfolioServicer. currency is the ISO
// code used for the summary display block.
func NewPortfolioService(holdings HoldingServicer, quotes QuoteSource, currency string) PortfolioServicer {
	return &portfolioService{holdings: holdings, quotes: quotes, currency: currency}
}

// GetEnrichedHoldings values every holding. Quote failures leave the
// affected rows at price zero and never fail the call.
func (s *portfolioService) GetEnrichedHoldings(ctx context.Context) ([]portfolio.EnrichedHolding, error) {
	holdings, err := s.holdings.ListHoldings(ctx)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return []portfolio.EnrichedHolding{}, nil
	}

	instruments := make([]models.Instrument, len(holdings))
	for i, h := range holdings {
		instruments[i] = h.Instrument()
	}
	return portfolio.Enrich(holdings, s.quotes.GetPrices(ctx, instruments)), nil
}

// GetEnrichedHolding values a single holding.
func (s *portfolioService) GetEnrichedHolding(ctx context.Context, id uint) (*portfolio.EnrichedHolding, error) {
	holding, err := s.holdings.GetHoldingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quotes := s.quotes.GetPrices(ctx, []models.Instrument{holding.Instrument()})
	enriched := portfolio.EnrichOne(*holding, quotes)
	return &enriched, nil
}

// GetSummary totals the portfolio at live prices.
func (s *portfolioService) GetSummary(ctx context.Context) (*portfolio.Summary, error) {
	rows, err := s.GetEnrichedHoldings(ctx)
	if err != nil {
		return nil, err
	}
	summary := portfolio.SummarizeEnriched(rows)
	if s.currency != "" {
		display := summary.Display(s.currency)
		summary.Formatted = &display
	}
	return &summary, nil
}
