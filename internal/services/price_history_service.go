package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/pagination"
)

// priceHistoryService handles the append-only price log.
type priceHistoryService struct {
	db *gorm.DB
}

// NewPriceHistoryService creates a new PriceHistoryServicer.
func NewPriceHistoryService(db *gorm.DB) PriceHistoryServicer {
	return &priceHistoryService{db: db}
}

// RecordPrices inserts price observations, skipping duplicates of
// symbol and timestamp.
func (s *priceHistoryService) RecordPrices(ctx context.Context, entries []PriceHistoryInput) (int, error) {
	if len(entries) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Prices array is empty")
	}

	count := 0
	for _, e := range entries {
		ph := models.PriceHistory{
			Symbol:    strings.ToUpper(e.Symbol),
			Price:     e.Price,
			Timestamp: e.Timestamp.UTC(),
		}
		result := s.db.WithContext(ctx).
			Where("symbol = ? AND timestamp = ?", ph.Symbol, ph.Timestamp).
			FirstOrCreate(&ph)
		if result.Error != nil {
			return count, apperrors.StoreError(result.Error)
		}
		if result.RowsAffected > 0 {
			count++
		}
	}
	return count, nil
}

// GetPriceHistory returns recorded prices for a symbol, newest first.
func (s *priceHistoryService) GetPriceHistory(ctx context.Context, symbol string, page pagination.PageRequest) (*pagination.PageResponse[models.PriceHistory], error) {
	query := s.db.WithContext(ctx).Model(&models.PriceHistory{}).
		Where("symbol = ?", strings.ToUpper(strings.TrimSpace(symbol)))

	result, err := pagination.Find[models.PriceHistory](query, "timestamp DESC, id DESC", page)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return result, nil
}
