package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
	"github.com/nkchunduri/stock-tracker/internal/testutil"
)

func TestGetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		src := &mockQuoteSource{getFn: func(_ context.Context, symbol, exchange string) (*models.PriceQuote, error) {
			return &models.PriceQuote{Symbol: symbol, Exchange: exchange, Price: decimal.NewFromInt(2500)}, nil
		}}
		q, err := NewMarketDataService(src).GetQuote(ctx, "RELIANCE", "NS")
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, q.Price, "2500")
	})

	t.Run("upstream_failure", func(t *testing.T) {
		src := &mockQuoteSource{getFn: func(context.Context, string, string) (*models.PriceQuote, error) {
			return nil, fmt.Errorf("%w: FAKESYM.NS: No data found, symbol may be delisted", quote.ErrQuoteUnavailable)
		}}
		_, err := NewMarketDataService(src).GetQuote(ctx, "FAKESYM", "NS")
		testutil.AssertAppError(t, err, "QUOTE_UNAVAILABLE")

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message == "" {
			t.Error("expected upstream message to be propagated")
		}
		if !errors.Is(err, quote.ErrQuoteUnavailable) {
			t.Error("expected the upstream cause to stay reachable")
		}
	})

	t.Run("empty_symbol", func(t *testing.T) {
		_, err := NewMarketDataService(&mockQuoteSource{}).GetQuote(ctx, " ", "NS")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSearchSymbols(t *testing.T) {
	ctx := context.Background()
	src := &mockQuoteSource{searchFn: func(_ context.Context, q string) []quote.SearchResult {
		return []quote.SearchResult{{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: "NS", Type: "EQUITY"}}
	}}
	svc := NewMarketDataService(src)

	t.Run("valid", func(t *testing.T) {
		results, err := svc.SearchSymbols(ctx, "tcs")
		testutil.AssertNoError(t, err)
		if len(results) != 1 || results[0].Symbol != "TCS" {
			t.Errorf("unexpected results %+v", results)
		}
	})

	t.Run("missing_query", func(t *testing.T) {
		_, err := svc.SearchSymbols(ctx, "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
