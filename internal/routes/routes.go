package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-service-backend/internal/config"
	handler "invoice-service-backend/internal/handlers"
	"invoice-service-backend/internal/middleware"
	"invoice-service-backend/internal/repository"
	"invoice-service-backend/internal/services/accounts"
	"invoice-service-backend/internal/services/invoices"
	"invoice-service-backend/internal/views"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config, log *zap.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	viewCache := views.NewCache()

	invoiceService := invoices.NewService(invoiceRepo, auditRepo, viewCache, log)
	accountService := accounts.NewService(userRepo, log, cfg.JwtSecret, cfg.JwtAccessMinutes)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, customerRepo, viewCache)
	authHandler := handler.NewAuthHandler(accountService)

	r.GET("/signup", handler.SignupPage)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	api.GET("/me", middleware.AuthRequired(cfg.JwtSecret), authHandler.Me)
	api.GET("/customers", invoiceHandler.ListCustomers)

	// Invoice form actions and the cached listing they invalidate.
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/invoices", invoiceHandler.List)
		dashboard.POST("/invoices", invoiceHandler.Create)
		dashboard.POST("/invoices/:id", invoiceHandler.Update)
		dashboard.POST("/invoices/:id/delete", invoiceHandler.Delete)
	}
}
