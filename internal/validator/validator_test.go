package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Symbol    string `validate:"required,yahoo_symbol"`
	Exchange  string `validate:"required,exchange"`
	AlertType string `validate:"omitempty,alert_type"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"exchange":     validateExchange,
		"alert_type":   validateAlertType,
		"yahoo_symbol": validateYahooSymbol,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			t.Fatalf("failed to register %s: %v", tag, err)
		}
	}
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	tests := []struct {
		name  string
		input sample
		valid bool
	}{
		{"nse", sample{Symbol: "RELIANCE", Exchange: "NS"}, true},
		{"bse_with_ampersand", sample{Symbol: "M&M", Exchange: "BO"}, true},
		{"hyphenated", sample{Symbol: "BAJAJ-AUTO", Exchange: "NS", AlertType: "above"}, true},
		{"below", sample{Symbol: "TCS", Exchange: "NS", AlertType: "below"}, true},
		{"unknown_exchange", sample{Symbol: "TCS", Exchange: "NYSE"}, false},
		{"lowercase_exchange", sample{Symbol: "TCS", Exchange: "ns"}, true},
		{"suffixed_symbol", sample{Symbol: "RELIANCE.NS", Exchange: "NS"}, true},
		{"bad_alert_type", sample{Symbol: "TCS", Exchange: "NS", AlertType: "sideways"}, false},
		{"symbol_with_space", sample{Symbol: "TATA STEEL", Exchange: "NS"}, false},
		{"symbol_too_long", sample{Symbol: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", Exchange: "NS"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
