// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/nkchunduri/stock-tracker/internal/models"
)

// yahooSymbolRegex matches tickers such as RELIANCE, M&M, BAJAJ-AUTO or
// RELIANCE.NS. The services strip a trailing .NS/.BO before storing.
var yahooSymbolRegex = regexp.MustCompile(`^[A-Za-z0-9&\-_.]{1,20}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("exchange", validateExchange)
		_ = v.RegisterValidation("alert_type", validateAlertType)
		_ = v.RegisterValidation("yahoo_symbol", validateYahooSymbol)
	}
}

// validateExchange is case-insensitive; the services upper-case the value.
func validateExchange(fl validator.FieldLevel) bool {
	switch strings.ToUpper(strings.TrimSpace(fl.Field().String())) {
	case models.ExchangeNSE, models.ExchangeBSE:
		return true
	}
	return false
}

func validateAlertType(fl validator.FieldLevel) bool {
	switch models.AlertType(fl.Field().String()) {
	case models.AlertAbove, models.AlertBelow:
		return true
	}
	return false
}

func validateYahooSymbol(fl validator.FieldLevel) bool {
	return yahooSymbolRegex.MatchString(fl.Field().String())
}
