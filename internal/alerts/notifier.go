package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nkchunduri/stock-tracker/internal/models"
)

// Match is an alert whose condition held at the observed price.
type Match struct {
	Alert      models.Alert
	Price      decimal.Decimal
	ObservedAt time.Time
}

// Message is the human readable form of the match.
func (m Match) Message() string {
	return fmt.Sprintf("ALERT: %s is %s %s. Current: %s",
		m.Alert.Symbol, m.Alert.AlertType, m.Alert.TargetPrice.String(), m.Price.String())
}

// Notifier is told about every triggered alert. Delivery (email, push) is
// left to implementations.
type Notifier interface {
	Notify(ctx context.Context, match Match) error
}

// LogNotifier writes triggered alerts to the log.
type LogNotifier struct {
	log *zap.SugaredLogger
}

// NewLogNotifier creates a notifier that logs matches with the given logger.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &LogNotifier{log: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, match Match) error {
	fields := []any{
		"alert_id", match.Alert.ID,
		"symbol", match.Alert.Symbol,
		"alert_type", match.Alert.AlertType,
		"target_price", match.Alert.TargetPrice.String(),
		"price", match.Price.String(),
	}
	if id := CycleID(ctx); id != "" {
		fields = append(fields, "cycle_id", id)
	}
	n.log.Infow(match.Message(), fields...)
	return nil
}
