// Package router assembles the HTTP surface of the stock tracker.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nkchunduri/stock-tracker/internal/handlers"
	"github.com/nkchunduri/stock-tracker/internal/middleware"
	"github.com/nkchunduri/stock-tracker/internal/services"
)

// Services are the dependencies the routes are served from.
type Services struct {
	Holdings     services.HoldingServicer
	Alerts       services.AlertServicer
	PriceHistory services.PriceHistoryServicer
	MarketData   services.MarketDataServicer
	Portfolio    services.PortfolioServicer
}

// New builds the Gin engine with middleware, Swagger UI and the /api routes.
func New(svc Services) *gin.Engine {
	holdingHandler := handlers.NewHoldingHandler(svc.Holdings, svc.Portfolio)
	alertHandler := handlers.NewAlertHandler(svc.Alerts)
	stockHandler := handlers.NewStockHandler(svc.MarketData, svc.PriceHistory)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	holdings := api.Group("/holdings")
	holdings.GET("", holdingHandler.ListHoldings)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)

	stock := api.Group("/stock")
	stock.GET("/:symbol", stockHandler.GetQuote)
	stock.GET("/:symbol/history", stockHandler.GetPriceHistory)

	api.GET("/search", stockHandler.Search)
	api.GET("/portfolio/summary", portfolioHandler.GetSummary)

	alerts := api.Group("/alerts")
	alerts.GET("", alertHandler.ListAlerts)
	alerts.GET("/:id", alertHandler.GetAlert)
	alerts.POST("", alertHandler.CreateAlert)
	alerts.DELETE("/:id", alertHandler.DeleteAlert)

	return router
}
