package routes

import (
	"github.com/gin-gonic/gin"

	"evermore/internal/authz"
	"evermore/internal/handlers"
	"evermore/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	boardHandler *handlers.BoardHandler,
	inquiryHandler *handlers.InquiryHandler,
	opportunityHandler *handlers.OpportunityHandler,
	quoteHandler *handlers.QuoteHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// ---- protected
	r.Use(middleware.AuthMiddleware())
	r.Use(middleware.ReadOnlyGuard())

	// BOARD
	board := r.Group("/board")
	{
		board.GET("", boardHandler.GetBoard)
		board.POST("/move", boardHandler.Move)
		board.POST("/meeting/confirm", boardHandler.ConfirmMeeting)
		board.POST("/meeting/cancel", boardHandler.CancelMeeting)
	}

	// INQUIRIES
	inquiries := r.Group("/inquiries")
	{
		inquiries.GET("", inquiryHandler.List)
		inquiries.POST("", inquiryHandler.Create)
		inquiries.GET("/:id", inquiryHandler.GetByID)
		inquiries.POST("/:id/status", inquiryHandler.UpdateStatus)
	}

	// OPPORTUNITIES
	opportunities := r.Group("/opportunities")
	{
		opportunities.GET("", opportunityHandler.List)
		opportunities.GET("/:id", opportunityHandler.GetByID)
		opportunities.POST("/:id/status", opportunityHandler.UpdateStatus)
		opportunities.POST("/:id/quote",
			middleware.RequireRoles(authz.RolePlanner, authz.RoleCoordinator, authz.RoleManagement, authz.RoleAdmin),
			quoteHandler.Generate)
	}

	return r
}
