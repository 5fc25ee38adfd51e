package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nkchunduri/stock-tracker/internal/alerts"
	"github.com/nkchunduri/stock-tracker/internal/logger"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/quote"
	"github.com/nkchunduri/stock-tracker/internal/services"
	"github.com/nkchunduri/stock-tracker/internal/testutil"
	"github.com/nkchunduri/stock-tracker/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// yahooStub serves chart and search responses. Prices are keyed by Yahoo
// ticker and may change between calls.
type yahooStub struct {
	mu     sync.Mutex
	prices map[string]float64
	server *httptest.Server
}

func newYahooStub(t *testing.T, prices map[string]float64) *yahooStub {
	t.Helper()
	stub := &yahooStub{prices: prices}
	stub.server = httptest.NewServer(http.HandlerFunc(stub.serve))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *yahooStub) setPrice(ticker string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[ticker] = price
}

func (s *yahooStub) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if strings.HasPrefix(r.URL.Path, "/search") {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"quotes": []any{
				map[string]any{"symbol": "TCS.NS", "shortname": "Tata Consultancy", "exchange": "NSI", "quoteType": "EQUITY"},
				map[string]any{"symbol": "TCS", "shortname": "TCS ADR", "exchange": "NYQ", "quoteType": "EQUITY"},
			},
		})
		return
	}

	ticker := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	s.mu.Lock()
	price, ok := s.prices[ticker]
	s.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"chart": map[string]any{
				"result": nil,
				"error":  map[string]any{"code": "Not Found", "description": "No data found, symbol may be delisted"},
			},
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"chart": map[string]any{
			"result": []any{map[string]any{
				"meta": map[string]any{
					"symbol":             ticker,
					"currency":           "INR",
					"regularMarketPrice": price,
					"previousClose":      price,
					"regularMarketTime":  time.Now().Unix(),
				},
			}},
			"error": nil,
		},
	})
}

// testApp holds the full application stack for router tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Quotes *quote.Client
	Yahoo  *yahooStub
	svc    Services
}

func setupApp(t *testing.T, prices map[string]float64) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	yahoo := newYahooStub(t, prices)
	client := quote.NewClient(quote.Options{
		ChartURL:  yahoo.server.URL + "/chart",
		SearchURL: yahoo.server.URL + "/search",
		Timeout:   2 * time.Second,
	})

	holdingService := services.NewHoldingService(db)
	svc := Services{
		Holdings:     holdingService,
		Alerts:       services.NewAlertService(db),
		PriceHistory: services.NewPriceHistoryService(db),
		MarketData:   services.NewMarketDataService(client),
		Portfolio:    services.NewPortfolioService(holdingService, client, "INR"),
	}

	return &testApp{DB: db, Router: New(svc), Quotes: client, Yahoo: yahoo, svc: svc}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func (app *testApp) createHolding(t *testing.T, symbol, exchange string, qty int, price string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"symbol":%q,"exchange":%q,"quantity":%d,"purchase_price":%s,"purchase_date":"2024-01-15"}`,
		symbol, exchange, qty, price)
	rec := app.request("POST", "/api/holdings", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create holding failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["id"].(float64)
}

func TestHealth(t *testing.T) {
	app := setupApp(t, map[string]float64{})

	rec := app.request("GET", "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if parseJSON(t, rec)["status"] != "ok" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestHoldingFlow(t *testing.T) {
	app := setupApp(t, map[string]float64{"RELIANCE.NS": 2500})

	id := app.createHolding(t, "RELIANCE", "NS", 10, "2450.50")

	// Enriched list uses the live price.
	rec := app.request("GET", "/api/holdings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing holdings, got %d: %s", rec.Code, rec.Body.String())
	}
	rows := parseJSONArray(t, rec)
	if len(rows) != 1 {
		t.Fatalf("expected 1 holding, got %d", len(rows))
	}
	row := rows[0].(map[string]interface{})
	for field, want := range map[string]string{
		"current_price":      "2500.00",
		"invested_value":     "24505.00",
		"current_value":      "25000.00",
		"total_gain":         "495.00",
		"total_gain_percent": "2.02",
	} {
		if row[field] != want {
			t.Errorf("%s = %v, want %s", field, row[field], want)
		}
	}

	// Single holding.
	rec = app.request("GET", fmt.Sprintf("/api/holdings/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 getting holding, got %d", rec.Code)
	}
	if parseJSON(t, rec)["symbol"] != "RELIANCE" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}

	// Update.
	rec = app.request("PUT", fmt.Sprintf("/api/holdings/%.0f", id),
		`{"quantity":20,"purchase_price":2400,"purchase_date":"2024-02-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating holding, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/portfolio/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 summary, got %d", rec.Code)
	}
	summary := parseJSON(t, rec)
	if summary["total_invested"] != "48000.00" || summary["current_value"] != "50000.00" {
		t.Errorf("unexpected summary after update: %s", rec.Body.String())
	}
	if summary["total_gain_percent"] != "4.17" {
		t.Errorf("total_gain_percent = %v, want 4.17", summary["total_gain_percent"])
	}

	// Delete, then the id is gone.
	rec = app.request("DELETE", fmt.Sprintf("/api/holdings/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting holding, got %d", rec.Code)
	}
	rec = app.request("DELETE", fmt.Sprintf("/api/holdings/%.0f", id), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", rec.Code)
	}
	rec = app.request("PUT", fmt.Sprintf("/api/holdings/%.0f", id),
		`{"quantity":1,"purchase_price":1,"purchase_date":"2024-02-01"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 updating missing holding, got %d", rec.Code)
	}
}

func TestHoldingFlow_FailedQuoteDegrades(t *testing.T) {
	app := setupApp(t, map[string]float64{"RELIANCE.NS": 2500})

	app.createHolding(t, "RELIANCE", "NS", 10, "2450.50")
	app.createHolding(t, "GHOST", "NS", 1, "5")

	rec := app.request("GET", "/api/holdings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a failed quote, got %d: %s", rec.Code, rec.Body.String())
	}
	rows := parseJSONArray(t, rec)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	bySymbol := map[string]map[string]interface{}{}
	for _, r := range rows {
		m := r.(map[string]interface{})
		bySymbol[m["symbol"].(string)] = m
	}
	if bySymbol["RELIANCE"]["current_value"] != "25000.00" {
		t.Errorf("healthy row disturbed: %v", bySymbol["RELIANCE"])
	}
	ghost := bySymbol["GHOST"]
	if ghost["current_price"] != "0.00" || ghost["total_gain"] != "-5.00" {
		t.Errorf("failed row not degraded to zero: %v", ghost)
	}
	if ghost["quote_error"] == nil {
		t.Error("expected quote_error on failed row")
	}

	rec = app.request("GET", "/api/portfolio/summary", "")
	summary := parseJSON(t, rec)
	if summary["current_value"] != "25000.00" || summary["total_invested"] != "24510.00" {
		t.Errorf("unexpected summary: %s", rec.Body.String())
	}
	if summary["holdings_count"] != float64(2) {
		t.Errorf("holdings_count = %v, want 2", summary["holdings_count"])
	}
}

func TestHoldingFlow_SuffixedSymbol(t *testing.T) {
	app := setupApp(t, map[string]float64{"RELIANCE.NS": 2500, "TCS.BO": 3900})

	app.createHolding(t, "RELIANCE.NS", "NS", 10, "2450.50")
	app.createHolding(t, "tcs", "bo", 1, "3800")

	rec := app.request("GET", "/api/holdings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing holdings, got %d: %s", rec.Code, rec.Body.String())
	}
	bySymbol := map[string]map[string]interface{}{}
	for _, r := range parseJSONArray(t, rec) {
		m := r.(map[string]interface{})
		bySymbol[m["symbol"].(string)] = m
	}
	reliance, ok := bySymbol["RELIANCE"]
	if !ok {
		t.Fatalf("expected suffix stripped from stored symbol, got %s", rec.Body.String())
	}
	if reliance["current_price"] != "2500.00" || reliance["quote_error"] != nil {
		t.Errorf("suffixed holding not quoted: %v", reliance)
	}
	tcs, ok := bySymbol["TCS"]
	if !ok {
		t.Fatalf("expected upper-cased symbol TCS, got %s", rec.Body.String())
	}
	if tcs["exchange"] != "BO" || tcs["current_price"] != "3900.00" {
		t.Errorf("lowercase exchange not normalised: %v", tcs)
	}

	rec = app.request("POST", "/api/holdings",
		`{"symbol":"RELIANCE.BO","exchange":"NS","quantity":1,"purchase_price":1,"purchase_date":"2024-01-15"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for conflicting suffix, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStoreErrorMessagePassesThrough(t *testing.T) {
	app := setupApp(t, map[string]float64{})

	sqlDB, err := app.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	_ = sqlDB.Close()

	rec := app.request("GET", "/api/alerts", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)["error"].(map[string]interface{})
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("code = %v, want INTERNAL_ERROR", body["code"])
	}
	if msg, _ := body["message"].(string); !strings.Contains(msg, "database is closed") {
		t.Errorf("expected driver message in body, got %q", msg)
	}
}

func TestEmptyPortfolio(t *testing.T) {
	app := setupApp(t, map[string]float64{})

	rec := app.request("GET", "/api/holdings", "")
	if rec.Body.String() != "[]" {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/portfolio/summary", "")
	summary := parseJSON(t, rec)
	for _, field := range []string{"total_invested", "current_value", "total_gain", "total_gain_percent"} {
		if summary[field] != "0.00" {
			t.Errorf("%s = %v, want 0.00", field, summary[field])
		}
	}
}

func TestStockRoutes(t *testing.T) {
	app := setupApp(t, map[string]float64{"TCS.NS": 3900, "TCS.BO": 3895.5})

	rec := app.request("GET", "/api/stock/tcs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if parseJSON(t, rec)["price"] != "3900" {
		t.Errorf("unexpected quote %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/stock/TCS?exchange=BO", "")
	if parseJSON(t, rec)["price"] != "3895.5" {
		t.Errorf("unexpected BSE quote %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/stock/FAKESYM", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "QUOTE_UNAVAILABLE" {
		t.Errorf("code = %v, want QUOTE_UNAVAILABLE", errObj["code"])
	}
	if !strings.Contains(errObj["message"].(string), "No data found") {
		t.Errorf("expected upstream message, got %v", errObj["message"])
	}

	rec = app.request("GET", "/api/search?q=tcs", "")
	results := parseJSONArray(t, rec)
	if len(results) != 1 {
		t.Fatalf("expected only the NSE listing, got %s", rec.Body.String())
	}

	rec = app.request("GET", "/api/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without q, got %d", rec.Code)
	}
}

func TestAlertFlow(t *testing.T) {
	app := setupApp(t, map[string]float64{"TCS.NS": 3900})

	rec := app.request("POST", "/api/alerts", `{"symbol":"tcs.ns","target_price":4000,"alert_type":"above"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := parseJSON(t, rec)
	if created["symbol"] != "TCS" {
		t.Errorf("symbol = %v, want TCS", created["symbol"])
	}
	id := created["id"].(float64)

	rec = app.request("GET", "/api/alerts", "")
	if got := len(parseJSONArray(t, rec)); got != 1 {
		t.Fatalf("expected 1 active alert, got %d", got)
	}

	// Below target: no match.
	notifier := &capturingNotifier{}
	recorder := app.svc.PriceHistory
	evaluator := alerts.NewEvaluator(app.svc.Alerts, app.Quotes, notifier, alerts.EvaluatorConfig{Recorder: recorder}, nil)

	result, err := evaluator.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected cycle error: %v", err)
	}
	if len(result.Matches) != 0 {
		t.Errorf("expected no matches at 3900, got %d", len(result.Matches))
	}

	// Equality triggers.
	app.Yahoo.setPrice("TCS.NS", 4000)
	result, err = evaluator.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected cycle error: %v", err)
	}
	if len(result.Matches) != 1 || len(notifier.matches) != 1 {
		t.Fatalf("expected 1 match at 4000, got %d", len(result.Matches))
	}
	if !notifier.matches[0].Price.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("match price = %s, want 4000", notifier.matches[0].Price)
	}

	// Observed prices were recorded.
	rec = app.request("GET", "/api/stock/TCS/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 history, got %d", rec.Code)
	}
	if parseJSON(t, rec)["total_items"].(float64) < 1 {
		t.Errorf("expected recorded prices, got %s", rec.Body.String())
	}

	// Soft delete hides it from listings and cycles but not from lookup.
	rec = app.request("DELETE", fmt.Sprintf("/api/alerts/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting alert, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/alerts", "")
	if rec.Body.String() != "[]" {
		t.Errorf("expected no active alerts, got %s", rec.Body.String())
	}
	rec = app.request("GET", fmt.Sprintf("/api/alerts/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected deleted alert to stay readable, got %d", rec.Code)
	}
	if parseJSON(t, rec)["is_active"] != false {
		t.Errorf("expected is_active false, got %s", rec.Body.String())
	}
	rec = app.request("DELETE", fmt.Sprintf("/api/alerts/%.0f", id), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", rec.Code)
	}

	result, err = evaluator.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("unexpected cycle error: %v", err)
	}
	if result.AlertsChecked != 0 {
		t.Errorf("expected deleted alert to be skipped, checked %d", result.AlertsChecked)
	}

	var stored models.Alert
	if err := app.DB.First(&stored, uint(id)).Error; err != nil {
		t.Fatalf("expected row to remain: %v", err)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := setupApp(t, map[string]float64{})

	rec := app.request("OPTIONS", "/api/holdings", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

type capturingNotifier struct {
	mu      sync.Mutex
	matches []alerts.Match
}

func (n *capturingNotifier) Notify(_ context.Context, m alerts.Match) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.matches = append(n.matches, m)
	return nil
}
