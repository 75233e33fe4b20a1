package router

import (
	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/handlers"
	"stocktrack_backend/internal/middleware"
	"stocktrack_backend/internal/repositories"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers onto the engine.
func Setup(engine *gin.Engine, mgr *database.Manager, hub *ws.Hub) {
	// Repositories
	userRepo := repositories.NewUserRepository(mgr)
	inventoryRepo := repositories.NewInventoryRepository(mgr)
	referenceRepo := repositories.NewReferenceRepository(mgr)
	shipmentRepo := repositories.NewMaterialShipmentRepository(mgr)
	orderRepo := repositories.NewOrderShipmentRepository(mgr)
	notificationRepo := repositories.NewNotificationRepository(mgr)
	scanRepo := repositories.NewScanRepository(mgr)
	statsRepo := repositories.NewStatsRepository(mgr)

	// Services
	notificationService := services.NewNotificationService(notificationRepo, hub)
	authService := services.NewAuthService(userRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, notificationService)
	referenceService := services.NewReferenceService(referenceRepo)
	shipmentService := services.NewMaterialShipmentService(shipmentRepo, notificationService)
	orderService := services.NewOrderShipmentService(orderRepo, notificationService)
	scanService := services.NewScanService(scanRepo, inventoryRepo)
	statsService := services.NewStatsService(statsRepo)
	exportService := services.NewExportService(inventoryRepo, shipmentRepo, orderRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	shipmentHandler := handlers.NewMaterialShipmentHandler(shipmentService)
	orderHandler := handlers.NewOrderShipmentHandler(orderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	scanHandler := handlers.NewScanHandler(scanService)
	statsHandler := handlers.NewStatsHandler(statsService)
	exportHandler := handlers.NewExportHandler(exportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)

	// Notification push channel; token travels as a query parameter during
	// the websocket handshake, so it skips the header middleware.
	engine.GET("/ws/notifications", func(c *gin.Context) {
		hub.HandleConnection(c.Writer, c.Request)
	})

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupInventoryRoutes(authenticated, inventoryHandler)
		SetupReferenceRoutes(authenticated, referenceHandler)
		SetupMaterialShipmentRoutes(authenticated, shipmentHandler)
		SetupOrderShipmentRoutes(authenticated, orderHandler)
		SetupNotificationRoutes(authenticated, notificationHandler)
		SetupScanRoutes(authenticated, scanHandler)
		SetupStatsRoutes(authenticated, statsHandler)
		SetupExportRoutes(authenticated, exportHandler)
	}
}
