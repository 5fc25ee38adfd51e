package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nkchunduri/stock-tracker/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestHolding creates an NSE holding of 10 shares bought at 100.
func CreateTestHolding(t *testing.T, db *gorm.DB, symbol string) *models.Holding {
	t.Helper()
	return CreateTestHoldingWith(t, db, symbol, models.ExchangeNSE, 10, decimal.NewFromInt(100))
}

// CreateTestHoldingWith creates a holding with the given position.
func CreateTestHoldingWith(t *testing.T, db *gorm.DB, symbol, exchange string, quantity int64, price decimal.Decimal) *models.Holding {
	t.Helper()

	if symbol == "" {
		symbol = fmt.Sprintf("SYM%d", nextID())
	}
	holding := &models.Holding{
		Symbol:        symbol,
		Exchange:      exchange,
		Quantity:      quantity,
		PurchasePrice: price,
		PurchaseDate:  "2024-01-15",
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestAlert creates an active alert.
func CreateTestAlert(t *testing.T, db *gorm.DB, symbol string, alertType models.AlertType, target decimal.Decimal) *models.Alert {
	t.Helper()

	alert := &models.Alert{
		Symbol:      symbol,
		TargetPrice: target,
		AlertType:   alertType,
		IsActive:    true,
	}
	if err := db.Create(alert).Error; err != nil {
		t.Fatalf("failed to create test alert: %v", err)
	}
	return alert
}

// CreateTestPriceHistory records a price observation.
func CreateTestPriceHistory(t *testing.T, db *gorm.DB, symbol string, price decimal.Decimal, at time.Time) *models.PriceHistory {
	t.Helper()

	ph := &models.PriceHistory{
		Symbol:    symbol,
		Price:     price,
		Timestamp: at.UTC(),
	}
	if err := db.Create(ph).Error; err != nil {
		t.Fatalf("failed to create test price history: %v", err)
	}
	return ph
}
