package main

import (
	"time"

	"github.com/mercadito-app/mercadito-api/internal/config"
	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/models"
)

func main() {
	// Conectar base de datos
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("error al conectar la base de datos: %v", err)
	}

	// Migración automática
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("error al migrar la base de datos: %v", err)
	}

	// Artículos de muestra
	products := []models.Product{
		{
			Code:         "ART-0001",
			Barcode:      "7790001000011",
			Description:  "Yerba mate 1kg",
			Cost:         models.NewMoneyFromFloat(2100),
			BaseNoTax:    models.NewMoneyFromFloat(2800),
			TaxCode:      constants.TaxCodeStandard,
			ImportTaxPct: models.NewMoneyFromFloat(0),
			Enabled:      true,
		},
		{
			Code:         "ART-0002",
			Barcode:      "7790001000028",
			Description:  "Harina de trigo 1kg",
			Cost:         models.NewMoneyFromFloat(450),
			BaseNoTax:    models.NewMoneyFromFloat(620),
			TaxCode:      constants.TaxCodeReduced,
			ImportTaxPct: models.NewMoneyFromFloat(0),
			Enabled:      true,
		},
		{
			Code:         "ART-0003",
			Barcode:      "7790001000035",
			Description:  "Leche entera 1L",
			Cost:         models.NewMoneyFromFloat(900),
			BaseNoTax:    models.NewMoneyFromFloat(1150),
			TaxCode:      constants.TaxCodeExempt,
			ImportTaxPct: models.NewMoneyFromFloat(0),
			Enabled:      true,
		},
		{
			Code:         "ART-0004",
			Barcode:      "7790001000042",
			Description:  "Gaseosa cola 2.25L",
			Cost:         models.NewMoneyFromFloat(1500),
			BaseNoTax:    models.NewMoneyFromFloat(1980),
			TaxCode:      constants.TaxCodeStandard,
			ImportTaxPct: models.NewMoneyFromFloat(4),
			Enabled:      true,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("codigo_barras = ?", product.Barcode).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("no se pudo crear el artículo %s: %v", product.Barcode, err)
			} else {
				stdLog.Printf("artículo creado: %s (%s)", product.Barcode, product.Description)
			}
		} else {
			stdLog.Printf("el artículo ya existe: %s", product.Barcode)
		}
	}

	// Oferta de muestra sobre la gaseosa
	offers := []models.Offer{
		{
			Barcode:    "7790001000042",
			Kind:       constants.OfferTypeOffer,
			OfferPrice: models.NewMoneyFromFloat(2190),
			IsActive:   true,
		},
	}
	for _, offer := range offers {
		var existing models.Offer
		if err := models.DB.Where("codigo_barras = ? AND tipo = ?", offer.Barcode, offer.Kind).First(&existing).Error; err != nil {
			if err := models.DB.Create(&offer).Error; err != nil {
				stdLog.Printf("no se pudo crear la oferta %s: %v", offer.Barcode, err)
			} else {
				stdLog.Printf("oferta creada: %s", offer.Barcode)
			}
		} else {
			stdLog.Printf("la oferta ya existe: %s", offer.Barcode)
		}
	}

	// Reglas promocionales de muestra
	rules := []models.PromoRule{
		{
			Name:        "Envío gratis desde $15000",
			Kind:        constants.PromoRuleTypeFreeShipping,
			IsActive:    true,
			Order:       10,
			MinSubtotal: models.NewMoneyFromFloat(15000),
		},
		{
			Name:        "5% desde $10000",
			Kind:        constants.PromoRuleTypePercentDiscount,
			IsActive:    true,
			Order:       20,
			MinSubtotal: models.NewMoneyFromFloat(10000),
			DiscountPct: models.NewMoneyFromFloat(5),
		},
		{
			Name:        "10% desde $20000",
			Kind:        constants.PromoRuleTypePercentDiscount,
			IsActive:    true,
			Order:       30,
			MinSubtotal: models.NewMoneyFromFloat(20000),
			DiscountPct: models.NewMoneyFromFloat(10),
		},
	}
	for _, rule := range rules {
		var existing models.PromoRule
		if err := models.DB.Where("nombre = ?", rule.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&rule).Error; err != nil {
				stdLog.Printf("no se pudo crear la regla %s: %v", rule.Name, err)
			} else {
				stdLog.Printf("regla creada: %s", rule.Name)
			}
		} else {
			stdLog.Printf("la regla ya existe: %s", rule.Name)
		}
	}

	// Cupón de muestra con vigencia de 30 días
	endsAt := time.Now().AddDate(0, 0, 30)
	coupons := []models.Coupon{
		{
			Code:        "BIENVENIDO10",
			Kind:        constants.CouponTypePercent,
			Value:       models.NewMoneyFromFloat(10),
			MinSubtotal: models.NewMoneyFromFloat(5000),
			MaxUses:     100,
			EndsAt:      &endsAt,
			IsActive:    true,
		},
	}
	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("codigo = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("no se pudo crear el cupón %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("cupón creado: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("el cupón ya existe: %s", coupon.Code)
		}
	}

	stdLog.Println("datos de muestra cargados")
}
