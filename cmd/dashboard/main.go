package main

import (
	"log"

	_ "tmsdash/api/swagger" // swagger docs
	"tmsdash/internal/config"
	"tmsdash/internal/guard"
	"tmsdash/internal/handler"
	"tmsdash/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           TMS Dashboard API
// @version         1.0
// @description     Session-cookie dashboard gateway in front of the TMS REST API.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()
	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	deps := handler.NewDeps(cfg)

	g := guard.New(func(c *gin.Context) *model.User {
		return deps.Scope(c).Auth.CurrentUser(c.Request.Context())
	})

	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API routes
	api := router.Group("/api/v1")
	handler.NewAuthHandler(deps).RegisterRoutes(api)
	handler.NewNavHandler().RegisterRoutes(api, g)
	handler.RegisterResources(api, deps, g)

	log.Printf("Dashboard listening on :%s (upstream %s)", cfg.Port, cfg.UpstreamOrigin)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
