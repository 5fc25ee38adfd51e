// Package portfolio joins holdings with live quotes and derives the
// valuation figures shown for each holding and for the whole portfolio.
// Everything here is pure: no I/O, no clocks.
package portfolio

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

var hundred = decimal.NewFromInt(100)

// EnrichedHolding is a holding plus its valuation at the current price.
// CurrentPrice is zero when no usable quote was found.
type EnrichedHolding struct {
	models.Holding
	CurrentPrice     decimal.Decimal
	InvestedValue    decimal.Decimal
	CurrentValue     decimal.Decimal
	TotalGain        decimal.Decimal
	TotalGainPercent decimal.Decimal
	Quote            *models.PriceQuote
	QuoteError       string
}

// MarshalJSON renders derived money values with two decimals.
func (e EnrichedHolding) MarshalJSON() ([]byte, error) {
	type holding models.Holding
	return json.Marshal(struct {
		holding
		CurrentPrice     string             `json:"current_price"`
		InvestedValue    string             `json:"invested_value"`
		CurrentValue     string             `json:"current_value"`
		TotalGain        string             `json:"total_gain"`
		TotalGainPercent string             `json:"total_gain_percent"`
		Quote            *models.PriceQuote `json:"quote,omitempty"`
		QuoteError       string             `json:"quote_error,omitempty"`
	}{
		holding:          holding(e.Holding),
		CurrentPrice:     e.CurrentPrice.StringFixed(2),
		InvestedValue:    e.InvestedValue.StringFixed(2),
		CurrentValue:     e.CurrentValue.StringFixed(2),
		TotalGain:        e.TotalGain.StringFixed(2),
		TotalGainPercent: e.TotalGainPercent.StringFixed(2),
		Quote:            e.Quote,
		QuoteError:       e.QuoteError,
	})
}

// Enrich values every holding against the quote batch. Holdings without a
// usable quote are valued at zero; the other rows are unaffected.
func Enrich(holdings []models.Holding, quotes []quote.Result) []EnrichedHolding {
	out := make([]EnrichedHolding, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, EnrichOne(h, quotes))
	}
	return out
}

// EnrichOne values a single holding against the quote batch.
func EnrichOne(h models.Holding, quotes []quote.Result) EnrichedHolding {
	e := EnrichedHolding{Holding: h}

	res, found := findQuote(h, quotes)
	switch {
	case !found:
		e.QuoteError = "no quote for " + h.Symbol
	case !res.OK():
		e.QuoteError = res.Error
	default:
		e.Quote = res.Quote
		e.CurrentPrice = res.Quote.Price
	}

	qty := decimal.NewFromInt(h.Quantity)
	e.InvestedValue = qty.Mul(h.PurchasePrice)
	e.CurrentValue = qty.Mul(e.CurrentPrice)
	e.TotalGain = e.CurrentValue.Sub(e.InvestedValue)
	e.TotalGainPercent = gainPercent(e.TotalGain, e.InvestedValue)
	return e
}

// findQuote looks up the quote for a holding by symbol. A result on the
// holding's own exchange wins over one for the same symbol elsewhere.
func findQuote(h models.Holding, quotes []quote.Result) (quote.Result, bool) {
	var fallback *quote.Result
	for i := range quotes {
		if !strings.EqualFold(quotes[i].Symbol, h.Symbol) {
			continue
		}
		if strings.EqualFold(quotes[i].Exchange, h.Exchange) {
			return quotes[i], true
		}
		if fallback == nil {
			fallback = &quotes[i]
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return quote.Result{}, false
}

// gainPercent is gain / invested x 100, or zero when nothing was invested.
func gainPercent(gain, invested decimal.Decimal) decimal.Decimal {
	if invested.IsZero() {
		return decimal.Zero
	}
	return gain.Div(invested).Mul(hundred)
}
