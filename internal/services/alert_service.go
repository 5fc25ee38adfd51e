package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
)

// alertService handles alert persistence.
type alertService struct {
	db *gorm.DB
}

// NewAlertService creates a new AlertServicer.
func NewAlertService(db *gorm.DB) AlertServicer {
	return &alertService{db: db}
}

// CreateAlert stores a new active alert.
func (s *alertService) CreateAlert(ctx context.Context, in AlertInput) (*models.Alert, error) {
	symbol, _ := quote.SplitTicker(in.Symbol)
	if symbol == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Symbol is required")
	}
	if !in.TargetPrice.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Target price must be positive")
	}
	if in.AlertType != models.AlertAbove && in.AlertType != models.AlertBelow {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Alert type must be above or below")
	}

	alert := &models.Alert{
		Symbol:      symbol,
		TargetPrice: in.TargetPrice,
		AlertType:   in.AlertType,
		IsActive:    true,
	}
	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, apperrors.StoreError(err)
	}
	return alert, nil
}

// ListActiveAlerts returns alerts that have not been deleted, oldest first.
func (s *alertService) ListActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("id ASC").Find(&alerts).Error; err != nil {
		return nil, apperrors.StoreError(err)
	}
	return alerts, nil
}

// GetAlertByID returns an alert whether or not it is still active.
func (s *alertService) GetAlertByID(ctx context.Context, id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := s.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAlertNotFound
		}
		return nil, apperrors.StoreError(err)
	}
	return &alert, nil
}

// DeactivateAlert soft-deletes an active alert. The row is kept.
func (s *alertService) DeactivateAlert(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.StoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAlertNotFound
	}
	return nil
}
