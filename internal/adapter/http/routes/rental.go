package routes

import (
	"net/http"

	"rentora/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProperties = "/properties"
	PathTenants    = "/tenants"
	PathContracts  = "/contracts"
	PathPayments   = "/payments"
	PathDashboard  = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addRentalRoutes(
	rg *gin.RouterGroup,
	propertyHandler *handlers.PropertyHandler,
	tenantHandler *handlers.TenantHandler,
	contractHandler *handlers.ContractHandler,
	paymentHandler *handlers.PaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	properties := rg.Group(PathProperties)
	{
		properties.POST("", propertyHandler.Create)
		properties.GET("", propertyHandler.List)
		properties.GET("/available", propertyHandler.ListAvailable)
		properties.GET("/:id", propertyHandler.GetByID)
		properties.PUT("/:id", propertyHandler.Update)
		properties.DELETE("/:id", propertyHandler.Delete)
		properties.POST("/:id/image", propertyHandler.UploadImage)
	}

	tenants := rg.Group(PathTenants)
	{
		tenants.POST("", tenantHandler.Create)
		tenants.GET("", tenantHandler.List)
		tenants.GET("/without-property", tenantHandler.ListWithoutProperty)
		tenants.GET("/:id", tenantHandler.GetByID)
		tenants.PUT("/:id", tenantHandler.Update)
		tenants.DELETE("/:id", tenantHandler.Delete)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.Create)
		contracts.GET("", contractHandler.List)
		contracts.GET("/expiring", contractHandler.ListExpiring)
		contracts.GET("/status/:status", contractHandler.ListByStatus)
		contracts.POST("/recompute", contractHandler.Recompute)
		contracts.GET("/:id", contractHandler.GetByID)
		contracts.PUT("/:id", contractHandler.Update)
		contracts.DELETE("/:id", contractHandler.Delete)
		contracts.PATCH("/:id/status", contractHandler.UpdateStatus)
		contracts.POST("/:id/sign", contractHandler.Sign)
		contracts.POST("/:id/finalize", contractHandler.Finalize)
		contracts.POST("/:id/document", contractHandler.UploadDocument)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Create)
		payments.GET("", paymentHandler.List)
		payments.GET("/late", paymentHandler.ListLate)
		payments.GET("/status/:status", paymentHandler.ListByStatus)
		payments.POST("/recompute", paymentHandler.Recompute)
		payments.GET("/:id", paymentHandler.GetByID)
		payments.PUT("/:id", paymentHandler.Update)
		payments.DELETE("/:id", paymentHandler.Delete)
		payments.POST("/:id/register", paymentHandler.Register)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/late-payments", dashboardHandler.LatePayments)
		dashboard.GET("/expiring-contracts", dashboardHandler.ExpiringContracts)
		dashboard.GET("/featured-properties", dashboardHandler.FeaturedProperties)
	}
}
