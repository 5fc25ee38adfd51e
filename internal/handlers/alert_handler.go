package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/nkchunduri/stock-tracker/internal/errors"
	"github.com/nkchunduri/stock-tracker/internal/models"
	"github.com/nkchunduri/stock-tracker/internal/services"
)

// AlertHandler handles price alert requests.
type AlertHandler struct {
	alertService services.AlertServicer
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alertService services.AlertServicer) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// CreateAlertRequest represents the request payload for creating an alert.
type CreateAlertRequest struct {
	Symbol      string           `json:"symbol" binding:"required,yahoo_symbol"`
	TargetPrice float64          `json:"target_price" binding:"required,gt=0"`
	AlertType   models.AlertType `json:"alert_type" binding:"required,alert_type"`
}

// ListAlerts handles listing active alerts.
// @Summary     List alerts
// @Description Get every active price alert
// @Tags        alerts
// @Produce     json
// @Success     200 {array}  models.Alert "Active alerts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /alerts [get]
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	alerts, err := h.alertService.ListActiveAlerts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	c.JSON(http.StatusOK, alerts)
}

// GetAlert handles fetching an alert, active or not.
// @Summary     Get alert
// @Description Get an alert by ID, including deleted (inactive) alerts
// @Tags        alerts
// @Produce     json
// @Param       id  path     int true "Alert ID"
// @Success     200 {object} models.Alert "Alert"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Alert not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /alerts/{id} [get]
func (h *AlertHandler) GetAlert(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	alert, err := h.alertService.GetAlertByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// CreateAlert handles creating a price alert.
// @Summary     Create alert
// @Description Create an alert that fires when the price moves above or below a target
// @Tags        alerts
// @Accept      json
// @Produce     json
// @Param       request body     CreateAlertRequest true "Alert details"
// @Success     201     {object} CreatedResponse "Alert created"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /alerts [post]
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), services.AlertInput{
		Symbol:      req.Symbol,
		TargetPrice: decimal.NewFromFloat(req.TargetPrice),
		AlertType:   req.AlertType,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: alert.ID, Message: "Alert added successfully"})
}

// DeleteAlert handles deactivating an alert.
// @Summary     Delete alert
// @Description Deactivate an alert. The alert stays readable by ID.
// @Tags        alerts
// @Produce     json
// @Param       id  path     int true "Alert ID"
// @Success     200 {object} MessageResponse "Alert deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "No active alert with this ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /alerts/{id} [delete]
func (h *AlertHandler) DeleteAlert(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.alertService.DeactivateAlert(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Alert deleted successfully"})
}
