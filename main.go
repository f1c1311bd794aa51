// @title Viragweb API
// @version 1.0
// @description Florist storefront and back-office API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Desertfoxking25/szakdoga-viragweb/catalog"
	"github.com/Desertfoxking25/szakdoga-viragweb/config"
	"github.com/Desertfoxking25/szakdoga-viragweb/middleware"
	"github.com/Desertfoxking25/szakdoga-viragweb/models"
	"github.com/Desertfoxking25/szakdoga-viragweb/routes/admin_routes"
	"github.com/Desertfoxking25/szakdoga-viragweb/routes/storefront_routes"
	"github.com/Desertfoxking25/szakdoga-viragweb/services"
)

// catalogRefreshInterval is the fallback reload period; Redis
// invalidations trigger reloads immediately.
const catalogRefreshInterval = 5 * time.Minute

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Schema migrations
	if err := config.Gorm.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.Rating{},
		&models.Tip{},
		&models.Faq{},
		&models.LoginEvent{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migrated")

	// Cloudinary, Google OAuth
	services.InitCloudinary()
	config.InitGoogleOAuth()

	// Catalog snapshot: initial load, then refresh on Redis invalidations
	// and a periodic ticker
	config.InitCatalog()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go config.Catalog.Run(ctx, catalogRefreshInterval, catalog.ListenInvalidations(ctx, config.RedisClient))

	frontendURL := config.GetFrontendURL()
	corsCfg := cors.Config{
		AllowOrigins:     []string{frontendURL, "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Back-office (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	admin_routes.SetupAdminRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
