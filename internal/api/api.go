package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chefincasa/backend/config"
	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
)

// SetupAPI wires services, middleware and handlers onto the router.
//
// Layout:
//
//	/api/chefs/{register,login,logout,me,change-password}   account endpoints
//	/api/inquiries                                          public contact form
//	/api/chefs/:chefId/dish-photos                          public gallery (GET only)
//	/api/chefs/:chefId/...                                  chef workspace, auth + ownership gated
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	dishService := service.NewDishService(db)
	menuService := service.NewMenuService(db)
	menuDishService := service.NewMenuDishService(db, menuService)
	photoService := service.NewPhotoService(db, cfg.UploadsDir, cfg.PublicBaseURL, logger)
	emailService := service.NewEmailService(cfg, logger)
	inquiryService := service.NewInquiryService(db, emailService, logger)
	dashboardService := service.NewDashboardService(db)

	passwordLimiter := middleware.NewPasswordChangeRateLimiter(redisClient)
	inquiryLimiter := middleware.NewInquiryRateLimiter(redisClient)

	authHandler := NewAuthHandler(authService, passwordLimiter, config.IsProduction())
	profileHandler := NewProfileHandler(profileService, photoService)
	dishHandler := NewDishHandler(dishService)
	dishPhotoHandler := NewDishPhotoHandler(photoService)
	menuHandler := NewMenuHandler(menuService)
	menuDishHandler := NewMenuDishHandler(menuDishService)
	inquiryHandler := NewInquiryHandler(inquiryService, inquiryLimiter)
	dashboardHandler := NewDashboardHandler(dashboardService)

	root := router.Group("/api")

	authHandler.RegisterRoutes(root)
	inquiryHandler.RegisterPublicRoutes(root)
	dishPhotoHandler.RegisterPublicRoutes(root)

	chef := root.Group("/chefs/:chefId")
	chef.Use(middleware.AuthMiddleware(authService), middleware.ChefScope())
	{
		profileHandler.RegisterRoutes(chef)
		dishHandler.RegisterRoutes(chef)
		dishPhotoHandler.RegisterRoutes(chef)
		menuHandler.RegisterRoutes(chef)
		menuDishHandler.RegisterRoutes(chef)
		inquiryHandler.RegisterRoutes(chef)
		dashboardHandler.RegisterRoutes(chef)
	}
}
