package alerts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
	"github.com/nkchunduri/stock-tracker/internal/services"
)

// AlertStore is the persistence needed by the evaluator.
type AlertStore interface {
	ListActiveAlerts(ctx context.Context) ([]models.Alert, error)
}

// PriceFetcher fetches a batch of quotes. Per-instrument failures are
// reported inline.
type PriceFetcher interface {
	GetPrices(ctx context.Context, instruments []models.Instrument) []quote.Result
}

// PriceRecorder appends observed prices to the price history.
type PriceRecorder interface {
	RecordPrices(ctx context.Context, entries []services.PriceHistoryInput) (int, error)
}

// Triggered reports whether the alert condition holds at price. Equality
// triggers in both directions.
func Triggered(alert models.Alert, price decimal.Decimal) bool {
	switch alert.AlertType {
	case models.AlertAbove:
		return price.GreaterThanOrEqual(alert.TargetPrice)
	case models.AlertBelow:
		return price.LessThanOrEqual(alert.TargetPrice)
	default:
		return false
	}
}

// CycleResult contains the outcome of one evaluation cycle.
type CycleResult struct {
	AlertsChecked  int
	SymbolsFetched int
	FetchErrors    []quote.Result
	Matches        []Match
	PricesRecorded int
	Duration       time.Duration
}

// EvaluatorConfig tunes an Evaluator.
type EvaluatorConfig struct {
	// Exchange every alert symbol is quoted on. Defaults to NS.
	Exchange string
	// Recorder, when set, receives every price fetched during a cycle.
	Recorder PriceRecorder
}

// Evaluator checks active alerts against current prices.
type Evaluator struct {
	store    AlertStore
	quotes   PriceFetcher
	notifier Notifier
	recorder PriceRecorder
	exchange string
	log      *zap.SugaredLogger
}

// NewEvaluator creates a new Evaluator.
func NewEvaluator(store AlertStore, quotes PriceFetcher, notifier Notifier, cfg EvaluatorConfig, logger *zap.SugaredLogger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	exchange := strings.ToUpper(cfg.Exchange)
	if exchange == "" {
		exchange = models.ExchangeNSE
	}
	return &Evaluator{
		store:    store,
		quotes:   quotes,
		notifier: notifier,
		recorder: cfg.Recorder,
		exchange: exchange,
		log:      logger,
	}
}

// RunCycle evaluates every active alert once. Only a failure to load the
// alerts fails the cycle; quote, notify and recording failures are logged
// and the remaining alerts are still evaluated.
func (e *Evaluator) RunCycle(ctx context.Context) (CycleResult, error) {
	start := time.Now()
	log := e.log
	if id := CycleID(ctx); id != "" {
		log = log.With("cycle_id", id)
	}

	active, err := e.store.ListActiveAlerts(ctx)
	if err != nil {
		return CycleResult{}, fmt.Errorf("loading active alerts: %w", err)
	}
	result := CycleResult{AlertsChecked: len(active)}
	if len(active) == 0 {
		log.Debug("no active alerts, nothing to do")
		result.Duration = time.Since(start)
		return result, nil
	}

	// One fetch per distinct symbol.
	seen := make(map[string]bool, len(active))
	instruments := make([]models.Instrument, 0, len(active))
	for _, a := range active {
		sym := strings.ToUpper(a.Symbol)
		if seen[sym] {
			continue
		}
		seen[sym] = true
		instruments = append(instruments, models.Instrument{Symbol: sym, Exchange: e.exchange})
	}

	prices := make(map[string]*models.PriceQuote, len(instruments))
	for _, r := range e.quotes.GetPrices(ctx, instruments) {
		if !r.OK() {
			log.Warnw("alert price fetch failed", "symbol", r.Symbol, "exchange", r.Exchange, "error", r.Error)
			result.FetchErrors = append(result.FetchErrors, r)
			continue
		}
		prices[strings.ToUpper(r.Symbol)] = r.Quote
	}
	result.SymbolsFetched = len(prices)

	for _, a := range active {
		q, ok := prices[strings.ToUpper(a.Symbol)]
		if !ok || !Triggered(a, q.Price) {
			continue
		}
		m := Match{Alert: a, Price: q.Price, ObservedAt: q.Timestamp}
		result.Matches = append(result.Matches, m)
		if err := e.notifier.Notify(ctx, m); err != nil {
			log.Errorw("alert notification failed", "alert_id", a.ID, "symbol", a.Symbol, "error", err)
		}
	}

	if e.recorder != nil && len(prices) > 0 {
		entries := make([]services.PriceHistoryInput, 0, len(prices))
		for _, q := range prices {
			entries = append(entries, services.PriceHistoryInput{Symbol: q.Symbol, Price: q.Price, Timestamp: q.Timestamp})
		}
		recorded, err := e.recorder.RecordPrices(ctx, entries)
		if err != nil {
			log.Warnw("failed to record price history", "error", err)
		} else {
			result.PricesRecorded = recorded
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}
