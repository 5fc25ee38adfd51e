package portfolio

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

// Summary is the aggregate valuation of a set of holdings.
type Summary struct {
	TotalInvested    decimal.Decimal
	CurrentValue     decimal.Decimal
	TotalGain        decimal.Decimal
	TotalGainPercent decimal.Decimal
	HoldingsCount    int

	// Formatted is the currency display block, set by the caller.
	Formatted *SummaryDisplay
}

// MarshalJSON renders money values with two decimals.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalInvested    string          `json:"total_invested"`
		CurrentValue     string          `json:"current_value"`
		TotalGain        string          `json:"total_gain"`
		TotalGainPercent string          `json:"total_gain_percent"`
		HoldingsCount    int             `json:"holdings_count"`
		Display          *SummaryDisplay `json:"display,omitempty"`
	}{
		TotalInvested:    s.TotalInvested.StringFixed(2),
		CurrentValue:     s.CurrentValue.StringFixed(2),
		TotalGain:        s.TotalGain.StringFixed(2),
		TotalGainPercent: s.TotalGainPercent.StringFixed(2),
		HoldingsCount:    s.HoldingsCount,
		Display:          s.Formatted,
	})
}

// Summarize totals the valuation of every holding. An empty set yields a
// zero summary.
func Summarize(holdings []models.Holding, quotes []quote.Result) Summary {
	return SummarizeEnriched(Enrich(holdings, quotes))
}

// SummarizeEnriched totals already enriched holdings.
func SummarizeEnriched(rows []EnrichedHolding) Summary {
	s := Summary{HoldingsCount: len(rows)}
	for _, r := range rows {
		s.TotalInvested = s.TotalInvested.Add(r.InvestedValue)
		s.CurrentValue = s.CurrentValue.Add(r.CurrentValue)
	}
	s.TotalGain = s.CurrentValue.Sub(s.TotalInvested)
	s.TotalGainPercent = gainPercent(s.TotalGain, s.TotalInvested)
	return s
}

// SummaryDisplay holds currency formatted summary amounts, e.g. "₹24,505.00".
type SummaryDisplay struct {
	Currency      string `json:"currency"`
	TotalInvested string `json:"total_invested"`
	CurrentValue  string `json:"current_value"`
	TotalGain     string `json:"total_gain"`
}

// Display formats the summary amounts in the given ISO currency. Unknown
// codes fall back to plain two-decimal strings.
func (s Summary) Display(currency string) SummaryDisplay {
	return SummaryDisplay{
		Currency:      currency,
		TotalInvested: formatMoney(s.TotalInvested, currency),
		CurrentValue:  formatMoney(s.CurrentValue, currency),
		TotalGain:     formatMoney(s.TotalGain, currency),
	}
}

func formatMoney(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), code).Display()
}
