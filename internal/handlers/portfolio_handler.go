package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nkchunduri/stock-tracker/internal/services"
)

// PortfolioHandler handles portfolio aggregate requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// GetSummary handles the portfolio summary.
// @Summary     Portfolio summary
// @Description Total invested, current value and gain across all holdings at live prices
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} portfolio.Summary "Portfolio summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	summary, err := h.portfolioService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
