package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tetteam4/swimming-project/config"
	_ "github.com/tetteam4/swimming-project/docs"
	adminUser "github.com/tetteam4/swimming-project/internal/api/v1/admin/user"
	"github.com/tetteam4/swimming-project/internal/api/v1/auth"
	"github.com/tetteam4/swimming-project/internal/api/v1/pool"
	"github.com/tetteam4/swimming-project/internal/api/v1/profile"
	"github.com/tetteam4/swimming-project/internal/api/v1/shop"
	userRoutes "github.com/tetteam4/swimming-project/internal/api/v1/user"
	"github.com/tetteam4/swimming-project/internal/database"
	"github.com/tetteam4/swimming-project/internal/middleware"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, cfg.SiteURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded profile photos
	router.Static("/media", cfg.MediaDir)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			profile.RegisterRoutes(authorized)
			pool.RegisterRoutes(authorized)
			shop.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
		}
	}

	return router, nil
}
