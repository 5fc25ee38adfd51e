package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

// holdingService handles holding persistence.
type holdingService struct {
	db *gorm.DB
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db}
}

// CreateHolding stores a new holding. The symbol is trimmed, upper-cased and
// stripped of a Yahoo exchange suffix matching the holding's exchange.
func (s *holdingService) CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error) {
	symbol, suffix := quote.SplitTicker(in.Symbol)
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	exchange := strings.ToUpper(strings.TrimSpace(in.Exchange))
	if exchange != models.ExchangeNSE && exchange != models.ExchangeBSE {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Exchange must be NS or BO")
	}
	if suffix != "" && suffix != exchange {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol suffix ."+suffix+" does not match exchange "+exchange)
	}
	if err := validateHoldingValues(in.Quantity, in.PurchasePrice, in.PurchaseDate); err != nil {
		return nil, err
	}

	holding := &models.Holding{
		Symbol:        symbol,
		Exchange:      exchange,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		PurchaseDate:  in.PurchaseDate,
	}
	if err := s.db.WithContext(ctx).Create(holding).Error; err != nil {
		return nil, apperrors.StoreError(err)
	}
	return holding, nil
}

// ListHoldings returns every holding ordered by id.
func (s *holdingService) ListHoldings(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&holdings).Error; err != nil {
		return nil, apperrors.StoreError(err)
	}
	return holdings, nil
}

// GetHoldingByID returns a holding by its ID.
func (s *holdingService) GetHoldingByID(ctx context.Context, id uint) (*models.Holding, error) {
	var holding models.Holding
	if err := s.db.WithContext(ctx).First(&holding, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.StoreError(err)
	}
	return &holding, nil
}

// UpdateHolding replaces the quantity, purchase price and purchase date.
func (s *holdingService) UpdateHolding(ctx context.Context, id uint, in HoldingUpdate) (*models.Holding, error) {
	if err := validateHoldingValues(in.Quantity, in.PurchasePrice, in.PurchaseDate); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Model(&models.Holding{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":       in.Quantity,
		"purchase_price": in.PurchasePrice,
		"purchase_date":  in.PurchaseDate,
	})
	if result.Error != nil {
		return nil, apperrors.StoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrHoldingNotFound
	}
	return s.GetHoldingByID(ctx, id)
}

// DeleteHolding removes a holding permanently.
func (s *holdingService) DeleteHolding(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Holding{}, id)
	if result.Error != nil {
		return apperrors.StoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

func validateHoldingValues(quantity int64, price decimal.Decimal, purchaseDate string) error {
	if quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be positive")
	}
	if !price.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase price must be positive")
	}
	if _, err := time.Parse("2006-01-02", purchaseDate); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Purchase date must be YYYY-MM-DD")
	}
	return nil
}
