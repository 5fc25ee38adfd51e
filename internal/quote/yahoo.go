// Package quote fetches live equity prices and symbol search results from
// Yahoo Finance for NSE and BSE listed instruments.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nkchunduri/stock-tracker/internal/models"
)

const (
	DefaultChartURL  = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"

	yahooUA              = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
	defaultMaxConcurrent = 5
	searchQuotesCount    = "10"
)

// ErrQuoteUnavailable is wrapped by every GetPrice failure.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// searchExchanges maps Yahoo search exchange codes to local exchange codes.
// Results listed anywhere else are dropped.
var searchExchanges = map[string]string{
	"NSI": models.ExchangeNSE,
	"BOM": models.ExchangeBSE,
}

// yahooChartResponse is the top-level Yahoo Finance v8 chart response.
type yahooChartResponse struct {
	Chart struct {
		Result []yahooChartResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooChartResult is a single instrument in a chart response.
type yahooChartResult struct {
	Meta struct {
		Symbol             string   `json:"symbol"`
		Currency           string   `json:"currency"`
		RegularMarketPrice *float64 `json:"regularMarketPrice"`
		PreviousClose      *float64 `json:"previousClose"`
		ChartPreviousClose *float64 `json:"chartPreviousClose"`
		RegularMarketTime  int64    `json:"regularMarketTime"`
	} `json:"meta"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// yahooSearchResponse is the Yahoo Finance v1 search response.
type yahooSearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Result is the outcome of fetching one instrument in a batch. Exactly one
// of Quote and Error is set.
type Result struct {
	Symbol   string             `json:"symbol"`
	Exchange string             `json:"exchange"`
	Quote    *models.PriceQuote `json:"quote,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// OK reports whether the fetch produced a usable quote.
func (r Result) OK() bool { return r.Quote != nil && r.Error == "" }

// SearchResult is a symbol search hit on NSE or BSE.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}

// Options configures a Client. Zero values fall back to Yahoo's public
// endpoints, no client timeout and five concurrent requests.
type Options struct {
	ChartURL      string
	SearchURL     string
	Timeout       time.Duration
	MaxConcurrent int
	HTTPClient    *http.Client
	Logger        *zap.SugaredLogger
}

// Client talks to Yahoo Finance.
type Client struct {
	http          *resty.Client
	chartURL      string
	searchURL     string
	maxConcurrent int
	log           *zap.SugaredLogger
}

// NewClient creates a Yahoo Finance client.
func NewClient(opts Options) *Client {
	var rc *resty.Client
	if opts.HTTPClient != nil {
		rc = resty.NewWithClient(opts.HTTPClient)
	} else {
		rc = resty.New()
	}
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	rc.SetHeader("User-Agent", yahooUA)

	c := &Client{
		http:          rc,
		chartURL:      strings.TrimRight(opts.ChartURL, "/"),
		searchURL:     opts.SearchURL,
		maxConcurrent: opts.MaxConcurrent,
		log:           opts.Logger,
	}
	if c.chartURL == "" {
		c.chartURL = DefaultChartURL
	}
	if c.searchURL == "" {
		c.searchURL = DefaultSearchURL
	}
	if c.maxConcurrent <= 0 {
		c.maxConcurrent = defaultMaxConcurrent
	}
	if c.log == nil {
		c.log = zap.NewNop().Sugar()
	}
	return c
}

// SplitTicker separates a trailing .NS or .BO from a Yahoo ticker. exchange
// is "" when symbol has no exchange suffix.
func SplitTicker(symbol string) (base, exchange string) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, ex := range []string{models.ExchangeNSE, models.ExchangeBSE} {
		if b, ok := strings.CutSuffix(symbol, "."+ex); ok && b != "" {
			return b, ex
		}
	}
	return symbol, ""
}

// BuildTicker converts a symbol and local exchange code into a Yahoo ticker,
// e.g. RELIANCE + NS -> RELIANCE.NS. A symbol that already carries a suffix
// keeps it.
func BuildTicker(symbol, exchange string) string {
	base, suffix := SplitTicker(symbol)
	if suffix == "" {
		suffix = normalizeExchange(exchange)
	}
	return base + "." + suffix
}

func normalizeExchange(exchange string) string {
	exchange = strings.ToUpper(strings.TrimSpace(exchange))
	if exchange == "" {
		return models.ExchangeNSE
	}
	return exchange
}

// GetPrice fetches the current quote for one symbol. Every failure wraps
// ErrQuoteUnavailable and names the cause.
func (c *Client) GetPrice(ctx context.Context, symbol, exchange string) (*models.PriceQuote, error) {
	symbol, suffix := SplitTicker(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", ErrQuoteUnavailable)
	}
	if suffix != "" {
		exchange = suffix
	}
	exchange = normalizeExchange(exchange)
	ticker := BuildTicker(symbol, exchange)

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("ticker", ticker).
		Get(c.chartURL + "/{ticker}")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: http request: %v", ErrQuoteUnavailable, ticker, err)
	}

	var chart yahooChartResponse
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrQuoteUnavailable, ticker, resp.StatusCode())
		}
		return nil, fmt.Errorf("%w: %s: decoding response: %v", ErrQuoteUnavailable, ticker, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrQuoteUnavailable, ticker, chart.Chart.Error.Description)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrQuoteUnavailable, ticker, resp.StatusCode())
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s: invalid response from Yahoo Finance", ErrQuoteUnavailable, ticker)
	}

	return buildQuote(symbol, exchange, chart.Chart.Result[0])
}

// buildQuote extracts price data from a chart result. The market price falls
// back to the last non-null close when Yahoo omits regularMarketPrice.
func buildQuote(symbol, exchange string, result yahooChartResult) (*models.PriceQuote, error) {
	meta := result.Meta

	var price *float64
	if meta.RegularMarketPrice != nil && *meta.RegularMarketPrice > 0 {
		price = meta.RegularMarketPrice
	} else if len(result.Indicators.Quote) > 0 {
		closes := result.Indicators.Quote[0].Close
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] != nil {
				price = closes[i]
				break
			}
		}
	}
	if price == nil || *price <= 0 {
		return nil, fmt.Errorf("%w: %s.%s: no price in response", ErrQuoteUnavailable, symbol, exchange)
	}

	q := &models.PriceQuote{
		Symbol:   symbol,
		Exchange: exchange,
		Price:    decimal.NewFromFloat(*price),
		Currency: meta.Currency,
	}

	switch {
	case meta.PreviousClose != nil:
		q.PreviousClose = decimal.NewFromFloat(*meta.PreviousClose)
	case meta.ChartPreviousClose != nil:
		q.PreviousClose = decimal.NewFromFloat(*meta.ChartPreviousClose)
	}
	if q.PreviousClose.IsPositive() {
		q.Change = q.Price.Sub(q.PreviousClose)
		q.ChangePercent = q.Change.Div(q.PreviousClose).Mul(decimal.NewFromInt(100)).Round(4)
	}

	if meta.RegularMarketTime > 0 {
		q.Timestamp = time.Unix(meta.RegularMarketTime, 0).UTC()
	} else {
		q.Timestamp = time.Now().UTC()
	}
	return q, nil
}

// GetPrices fetches quotes for every distinct instrument concurrently. It
// never fails: per-instrument errors are reported inline. Result order is
// not significant; join on Symbol.
func (c *Client) GetPrices(ctx context.Context, instruments []models.Instrument) []Result {
	distinct := make([]models.Instrument, 0, len(instruments))
	seen := make(map[models.Instrument]bool, len(instruments))
	for _, inst := range instruments {
		key := models.Instrument{
			Symbol:   strings.ToUpper(strings.TrimSpace(inst.Symbol)),
			Exchange: normalizeExchange(inst.Exchange),
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		distinct = append(distinct, key)
	}

	results := make([]Result, len(distinct))
	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)
	for i, inst := range distinct {
		i, inst := i, inst
		g.Go(func() error {
			res := Result{Symbol: inst.Symbol, Exchange: inst.Exchange}
			q, err := c.GetPrice(ctx, inst.Symbol, inst.Exchange)
			if err != nil {
				c.log.Warnw("price fetch failed", "symbol", inst.Symbol, "exchange", inst.Exchange, "error", err)
				res.Error = err.Error()
			} else {
				res.Quote = q
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Search looks up symbols matching query and keeps NSE/BSE listings only.
// Failures are logged and produce an empty result.
func (c *Client) Search(ctx context.Context, query string) []SearchResult {
	out := []SearchResult{}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":           query,
			"quotesCount": searchQuotesCount,
			"newsCount":   "0",
		}).
		Get(c.searchURL)
	if err != nil {
		c.log.Errorw("symbol search failed", "query", query, "error", err)
		return out
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Errorw("symbol search failed", "query", query, "status", resp.StatusCode())
		return out
	}

	var sr yahooSearchResponse
	if err := json.Unmarshal(resp.Body(), &sr); err != nil {
		c.log.Errorw("symbol search returned malformed body", "query", query, "error", err)
		return out
	}

	for _, q := range sr.Quotes {
		exchange, ok := searchExchanges[q.Exchange]
		if !ok {
			continue
		}
		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		symbol, _ := SplitTicker(q.Symbol)
		out = append(out, SearchResult{
			Symbol:   symbol,
			Name:     name,
			Exchange: exchange,
			Type:     q.QuoteType,
		})
	}
	return out
}
