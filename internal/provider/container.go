package provider

import (
	"time"

	"github.com/mercadito-app/mercadito-api/internal/cache"
	"github.com/mercadito-app/mercadito-api/internal/config"
	"github.com/mercadito-app/mercadito-api/internal/geo"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/queue"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"
)

// Container contenedor de inyección de dependencias
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	ProductRepo          repository.ProductRepository
	OfferRepo            repository.OfferRepository
	PromoRuleRepo        repository.PromoRuleRepository
	CouponRepo           repository.CouponRepository
	CouponRedemptionRepo repository.CouponRedemptionRepository

	// Services
	PricingService        *service.PricingService
	ShippingService       *service.ShippingService
	PromoRuleService      *service.PromoRuleService
	CouponService         *service.CouponService
	QuoteService          *service.QuoteService
	CouponAdminService    *service.CouponAdminService
	PromoRuleAdminService *service.PromoRuleAdminService
	OfferAdminService     *service.OfferAdminService
}

// NewContainer inicializa el contenedor
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.OfferRepo = repository.NewOfferRepository(db)
	c.PromoRuleRepo = repository.NewPromoRuleRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponRedemptionRepo = repository.NewCouponRedemptionRepository(db)
}

func (c *Container) initServices() {
	geocoder := geo.NewHTTPGeocoder(
		c.Config.Geocoding.BaseURL,
		c.Config.Geocoding.APIKey,
		time.Duration(c.Config.Geocoding.TimeoutMS)*time.Millisecond,
	)

	c.PricingService = service.NewPricingService(c.ProductRepo, c.OfferRepo)
	c.ShippingService = service.NewShippingService(geocoder, service.ShippingOptions{
		StoreAddress:  c.Config.Store.Address,
		PickupKeyword: c.Config.Store.PickupKeyword,
		BaseFee:       c.Config.Delivery.BaseFee,
		PerKmRate:     c.Config.Delivery.PerKmRate,
		MaxDistanceKm: c.Config.Delivery.MaxDistanceKm,
	})
	c.PromoRuleService = service.NewPromoRuleService(c.PromoRuleRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.CouponRedemptionRepo)
	c.QuoteService = service.NewQuoteService(c.PricingService, c.ShippingService, c.PromoRuleService, c.CouponService)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo, c.CouponRedemptionRepo)
	c.PromoRuleAdminService = service.NewPromoRuleAdminService(c.PromoRuleRepo)
	c.OfferAdminService = service.NewOfferAdminService(c.OfferRepo, c.ProductRepo)
}
