package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertType is the direction of a price threshold.
type AlertType string

const (
	AlertAbove AlertType = "above"
	AlertBelow AlertType = "below"
)

// Alert is a standing price condition checked each evaluation cycle.
// Deleting an alert only clears IsActive; the row is kept.
type Alert struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Symbol      string          `gorm:"not null;index" json:"symbol"`
	TargetPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"target_price"`
	AlertType   AlertType       `gorm:"not null" json:"alert_type"`
	IsActive    bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}
