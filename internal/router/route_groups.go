package router

import (
	"stocktrack_backend/internal/handlers"
	"stocktrack_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes sets up the unauthenticated auth routes.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/login", authHandler.Login)
	group.POST("/register", authHandler.Register)
	group.POST("/refresh", authHandler.Refresh)
}

// SetupAuthenticatedAuthRoutes sets up the auth routes that require a token.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.Me)
}

// SetupInventoryRoutes sets up the inventory item routes.
func SetupInventoryRoutes(authenticatedGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := authenticatedGroup.Group("/inventory")
	{
		inventoryRoutes.GET("", inventoryHandler.GetItems)
		inventoryRoutes.POST("", inventoryHandler.CreateItem)
		inventoryRoutes.DELETE("", inventoryHandler.DeleteItems)
		inventoryRoutes.GET("/:id", inventoryHandler.GetItemByID)
		inventoryRoutes.PUT("/:id", inventoryHandler.UpdateItem)
		inventoryRoutes.PATCH("/:id/quantity", inventoryHandler.AdjustQuantity)
		inventoryRoutes.DELETE("/:id", inventoryHandler.DeleteItem)
	}
}

// SetupReferenceRoutes sets up the category and warehouse routes.
func SetupReferenceRoutes(authenticatedGroup *gin.RouterGroup, referenceHandler *handlers.ReferenceHandler) {
	categoryRoutes := authenticatedGroup.Group("/categories")
	{
		categoryRoutes.GET("", referenceHandler.GetCategories)
		categoryRoutes.POST("", referenceHandler.CreateCategory)
		categoryRoutes.GET("/:id", referenceHandler.GetCategoryByID)
		categoryRoutes.PUT("/:id", referenceHandler.UpdateCategory)
		categoryRoutes.DELETE("/:id", referenceHandler.DeleteCategory)
	}

	warehouseRoutes := authenticatedGroup.Group("/warehouses")
	{
		warehouseRoutes.GET("", referenceHandler.GetWarehouses)
		warehouseRoutes.POST("", referenceHandler.CreateWarehouse)
		warehouseRoutes.GET("/:id", referenceHandler.GetWarehouseByID)
		warehouseRoutes.PUT("/:id", referenceHandler.UpdateWarehouse)
		warehouseRoutes.DELETE("/:id", referenceHandler.DeleteWarehouse)
	}
}

// SetupMaterialShipmentRoutes sets up the material shipment routes.
func SetupMaterialShipmentRoutes(authenticatedGroup *gin.RouterGroup, shipmentHandler *handlers.MaterialShipmentHandler) {
	shipmentRoutes := authenticatedGroup.Group("/shipments")
	{
		shipmentRoutes.GET("", shipmentHandler.GetShipments)
		shipmentRoutes.POST("", shipmentHandler.CreateShipment)
		shipmentRoutes.DELETE("", shipmentHandler.DeleteShipments)
		shipmentRoutes.GET("/:id", shipmentHandler.GetShipmentByID)
		shipmentRoutes.PUT("/:id", shipmentHandler.UpdateShipment)
		shipmentRoutes.DELETE("/:id", shipmentHandler.DeleteShipment)
	}
}

// SetupOrderShipmentRoutes sets up the order shipment routes.
func SetupOrderShipmentRoutes(authenticatedGroup *gin.RouterGroup, orderHandler *handlers.OrderShipmentHandler) {
	orderRoutes := authenticatedGroup.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.GetOrders)
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.DELETE("", orderHandler.DeleteOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrderByID)
		orderRoutes.PUT("/:id", orderHandler.UpdateOrder)
		orderRoutes.DELETE("/:id", orderHandler.DeleteOrder)
	}
}

// SetupNotificationRoutes sets up the notification routes.
func SetupNotificationRoutes(authenticatedGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificationRoutes := authenticatedGroup.Group("/notifications")
	{
		notificationRoutes.GET("", notificationHandler.GetNotifications)
		notificationRoutes.POST("", notificationHandler.CreateNotification)
		notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
		notificationRoutes.PATCH("/read-all", notificationHandler.MarkAllRead)
		notificationRoutes.PATCH("/:id/read", notificationHandler.MarkRead)
		notificationRoutes.DELETE("/:id", notificationHandler.DeleteNotification)
	}
}

// SetupScanRoutes sets up the scan history routes.
func SetupScanRoutes(authenticatedGroup *gin.RouterGroup, scanHandler *handlers.ScanHandler) {
	scanRoutes := authenticatedGroup.Group("/scans")
	{
		scanRoutes.GET("", scanHandler.GetScans)
		scanRoutes.POST("", scanHandler.RecordScan)
		scanRoutes.GET("/:id", scanHandler.GetScanByID)
		scanRoutes.DELETE("/:id", scanHandler.DeleteScan)
	}
}

// SetupStatsRoutes sets up the dashboard aggregation routes.
func SetupStatsRoutes(authenticatedGroup *gin.RouterGroup, statsHandler *handlers.StatsHandler) {
	statsRoutes := authenticatedGroup.Group("/stats")
	{
		statsRoutes.GET("/inventory", statsHandler.GetInventoryStats)
		statsRoutes.GET("/shipments", statsHandler.GetMaterialShipmentStats)
		statsRoutes.GET("/orders", statsHandler.GetOrderShipmentStats)
		statsRoutes.GET("/impact", statsHandler.GetInventoryImpact)
	}
}

// SetupExportRoutes sets up the file export routes.
func SetupExportRoutes(authenticatedGroup *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	exportRoutes := authenticatedGroup.Group("/export")
	exportRoutes.Use(middleware.RoleAuthMiddleware("admin", "staff"))
	{
		exportRoutes.GET("/inventory", exportHandler.ExportInventory)
		exportRoutes.GET("/shipments", exportHandler.ExportMaterialShipments)
		exportRoutes.GET("/orders", exportHandler.ExportOrderShipments)
	}
}
