package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/pagination"
	"github.com/nkchunduri/stock-tracker/internal/services"
)

// StockHandler handles live quote, symbol search and price history requests.
type StockHandler struct {
	marketData   services.MarketDataServicer
	priceHistory services.PriceHistoryServicer
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(marketData services.MarketDataServicer, priceHistory services.PriceHistoryServicer) *StockHandler {
	return &StockHandler{marketData: marketData, priceHistory: priceHistory}
}

// GetQuote handles fetching the live quote for a symbol.
// @Summary     Get quote
// @Description Fetch the current price of a symbol from the quote source
// @Tags        stocks
// @Produce     json
// @Param       symbol   path     string true  "Symbol, e.g. RELIANCE"
// @Param       exchange query    string false "Exchange code, NS (default) or BO"
// @Success     200      {object} models.PriceQuote "Quote"
// @Failure     400      {object} ErrorResponse "Invalid input"
// @Failure     502      {object} ErrorResponse "Quote source unavailable"
// @Router      /stock/{symbol} [get]
func (h *StockHandler) GetQuote(c *gin.Context) {
	exchange := strings.ToUpper(c.DefaultQuery("exchange", models.ExchangeNSE))
	if exchange != models.ExchangeNSE && exchange != models.ExchangeBSE {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Exchange must be NS or BO"))
		return
	}

	q, err := h.marketData.GetQuote(c.Request.Context(), c.Param("symbol"), exchange)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

// GetPriceHistory handles listing recorded prices for a symbol.
// @Summary     Price history
// @Description Get recorded price observations for a symbol, newest first
// @Tags        stocks
// @Produce     json
// @Param       symbol    path  string true  "Symbol"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 50, max 500)"
// @Success     200 {object} pagination.PageResponse[models.PriceHistory] "Paginated price history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /stock/{symbol}/history [get]
func (h *StockHandler) GetPriceHistory(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.priceHistory.GetPriceHistory(c.Request.Context(), c.Param("symbol"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Search handles symbol search.
// @Summary     Search symbols
// @Description Search NSE and BSE listings by name or ticker
// @Tags        stocks
// @Produce     json
// @Param       q   query    string true "Search text"
// @Success     200 {array}  quote.SearchResult "Matching listings"
// @Failure     400 {object} ErrorResponse "Missing query"
// @Router      /search [get]
func (h *StockHandler) Search(c *gin.Context) {
	results, err := h.marketData.SearchSymbols(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
