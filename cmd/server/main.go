package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/router"
	"stocktrack_backend/internal/ws"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/lib/pq"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// .env is optional; environment variables win in deployed setups.
	if err := godotenv.Load(); err == nil {
		utils.LogInfo("Loaded environment from .env file")
	}

	utils.SetJWTSecret(os.Getenv("JWT_SECRET"))

	// DATABASE_URL takes precedence; otherwise the connection string is
	// assembled from the discrete DB_* variables.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = database.ConnString(
			utils.Getenv("DB_HOST", "localhost"),
			utils.Getenv("DB_PORT", "5432"),
			utils.Getenv("DB_USER", "stocktrack_user"),
			utils.Getenv("DB_PASSWORD", "stocktrack_password"),
			utils.Getenv("DB_NAME", "stocktrack_db"),
			utils.Getenv("DB_SSLMODE", "disable"),
		)
	}

	// The manager connects lazily: a database that is down at boot keeps
	// the API serving degraded responses instead of crashing the process.
	mgr := database.NewManager("postgres", dsn)
	if err := database.EnsureSchema(mgr); err != nil {
		utils.LogError(err, "Failed to ensure database schema")
	}
	utils.LogInfo("Database manager initialized", map[string]interface{}{"available": mgr.Available()})

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": mgr.Available()})
	})

	hub := ws.NewHub()

	// Setup all application routes
	router.Setup(engine, mgr, hub)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
