package services

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

// marketDataService exposes live quotes with application errors.
type marketDataService struct {
	quotes QuoteSource
}

// NewMarketDataService creates a new MarketDataServicer.
func NewMarketDataService(quotes QuoteSource) MarketDataServicer {
	return &marketDataService{quotes: quotes}
}

// GetQuote fetches a single live quote. Upstream failures surface as
// ErrQuoteUnavailable carrying the upstream message.
func (s *marketDataService) GetQuote(ctx context.Context, symbol, exchange string) (*models.PriceQuote, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	q, err := s.quotes.GetPrice(ctx, symbol, exchange)
	if err != nil {
		if errors.Is(err, quote.ErrQuoteUnavailable) {
			appErr := apperrors.WithMessage(apperrors.ErrQuoteUnavailable, err.Error())
			appErr.Internal = err
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return q, nil
}

// SearchSymbols looks up NSE/BSE listings matching query.
func (s *marketDataService) SearchSymbols(ctx context.Context, query string) ([]quote.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Query parameter q is required")
	}
	return s.quotes.Search(ctx, query), nil
}
