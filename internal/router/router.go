package router

import (
	"fmt"

	"github.com/mercadito-app/mercadito-api/internal/cache"
	"github.com/mercadito-app/mercadito-api/internal/config"
	"github.com/mercadito-app/mercadito-api/internal/http/handlers/admin"
	"github.com/mercadito-app/mercadito-api/internal/http/handlers/public"
	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter arma el router HTTP con todas las rutas
func SetupRouter(cfg *config.Config, container *provider.Container) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	publicHandler := public.New(container)
	adminHandler := admin.New(container)

	redisPrefix := cfg.Redis.Prefix
	if redisPrefix == "" {
		redisPrefix = "mc"
	}
	quoteRateRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:quote", redisPrefix),
		WindowSeconds: cfg.Security.QuoteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.QuoteRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(zap.L()))
	r.Use(CORSMiddleware(cfg.CORS))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "recurso no encontrado")
	})

	api := r.Group("/api/v1")
	{
		publicGroup := api.Group("/public")
		{
			publicGroup.GET("/config", publicHandler.GetConfig)
			publicGroup.POST("/quote",
				RateLimitMiddleware(cache.Client(), quoteRateRule, KeyByIP),
				publicHandler.CreateQuote,
			)
		}

		adminGroup := api.Group("/admin")
		{
			adminGroup.GET("/coupons", adminHandler.GetAdminCoupons)
			adminGroup.POST("/coupons", adminHandler.CreateCoupon)
			adminGroup.GET("/coupons/:id", adminHandler.GetAdminCoupon)
			adminGroup.PUT("/coupons/:id", adminHandler.UpdateCoupon)
			adminGroup.DELETE("/coupons/:id", adminHandler.DeleteCoupon)
			adminGroup.GET("/coupons/:id/redemptions", adminHandler.GetAdminCouponRedemptions)

			adminGroup.GET("/promo-rules", adminHandler.GetAdminPromoRules)
			adminGroup.POST("/promo-rules", adminHandler.CreatePromoRule)
			adminGroup.GET("/promo-rules/:id", adminHandler.GetAdminPromoRule)
			adminGroup.PUT("/promo-rules/:id", adminHandler.UpdatePromoRule)
			adminGroup.DELETE("/promo-rules/:id", adminHandler.DeletePromoRule)

			adminGroup.GET("/offers", adminHandler.GetAdminOffers)
			adminGroup.POST("/offers", adminHandler.CreateOffer)
			adminGroup.GET("/offers/:id", adminHandler.GetAdminOffer)
			adminGroup.PUT("/offers/:id", adminHandler.UpdateOffer)
			adminGroup.DELETE("/offers/:id", adminHandler.DeleteOffer)
		}
	}

	return r
}
