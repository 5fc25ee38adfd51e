package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/services"
)

// HoldingHandler handles holding-related requests.
type HoldingHandler struct {
	holdingService   services.HoldingServicer
	portfolioService services.PortfolioServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer, portfolioService services.PortfolioServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService, portfolioService: portfolioService}
}

// CreateHoldingRequest represents the request payload for adding a holding.
type CreateHoldingRequest struct {
	Symbol        string  `json:"symbol" binding:"required,yahoo_symbol"`
	Exchange      string  `json:"exchange" binding:"required,exchange"`
	Quantity      int64   `json:"quantity" binding:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"required,gt=0"`
	PurchaseDate  string  `json:"purchase_date" binding:"required,datetime=2006-01-02"`
}

// UpdateHoldingRequest represents the request payload for updating a holding.
type UpdateHoldingRequest struct {
	Quantity      int64   `json:"quantity" binding:"required,gt=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"required,gt=0"`
	PurchaseDate  string  `json:"purchase_date" binding:"required,datetime=2006-01-02"`
}

// ListHoldings handles listing holdings valued at live prices.
// @Summary     List holdings
// @Description Get every holding enriched with the current price, invested value, current value and gain
// @Tags        holdings
// @Produce     json
// @Success     200 {array}  portfolio.EnrichedHolding "Enriched holdings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
	rows, err := h.portfolioService.GetEnrichedHoldings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetHolding handles fetching a single holding valued at the live price.
// @Summary     Get holding
// @Description Get a holding by ID enriched with its current valuation
// @Tags        holdings
// @Produce     json
// @Param       id  path     int true "Holding ID"
// @Success     200 {object} portfolio.EnrichedHolding "Enriched holding"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	row, err := h.portfolioService.GetEnrichedHolding(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// CreateHolding handles adding a new holding.
// @Summary     Add holding
// @Description Record a purchase of a quantity of an NSE or BSE listed symbol
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       request body     CreateHoldingRequest true "Holding details"
// @Success     201     {object} CreatedResponse "Holding created"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.CreateHolding(c.Request.Context(), services.HoldingInput{
		Symbol:        req.Symbol,
		Exchange:      req.Exchange,
		Quantity:      req.Quantity,
		PurchasePrice: decimal.NewFromFloat(req.PurchasePrice),
		PurchaseDate:  req.PurchaseDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: holding.ID, Message: "Holding added successfully"})
}

// UpdateHolding handles updating the quantity, price and date of a holding.
// @Summary     Update holding
// @Description Replace the quantity, purchase price and purchase date of a holding
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id      path     int                  true "Holding ID"
// @Param       request body     UpdateHoldingRequest true "Updated values"
// @Success     200     {object} MessageResponse "Holding updated"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     404     {object} ErrorResponse "Holding not found"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	_, err = h.holdingService.UpdateHolding(c.Request.Context(), id, services.HoldingUpdate{
		Quantity:      req.Quantity,
		PurchasePrice: decimal.NewFromFloat(req.PurchasePrice),
		PurchaseDate:  req.PurchaseDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Holding updated successfully"})
}

// DeleteHolding handles removing a holding.
// @Summary     Delete holding
// @Description Permanently delete a holding
// @Tags        holdings
// @Produce     json
// @Param       id  path     int true "Holding ID"
// @Success     200 {object} MessageResponse "Holding deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Holding deleted successfully"})
}
