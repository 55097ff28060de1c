package service

import (
	"fmt"
	"strings"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"github.com/shopspring/decimal"
)

var (
	taxFactorStandard = decimal.NewFromFloat(1.21)
	taxFactorReduced  = decimal.NewFromFloat(1.105)
	oneHundred        = decimal.NewFromInt(100)
)

// QuoteItemInput renglón pedido por el cliente
type QuoteItemInput struct {
	Barcode     string `json:"codigo_barras" binding:"required"`
	Quantity    int    `json:"cantidad"`
	DisplayName string `json:"nombre"`
}

// PricedItem renglón con precio resuelto
type PricedItem struct {
	Barcode     string       `json:"codigo_barras"`
	Description string       `json:"descripcion"`
	Quantity    int          `json:"cantidad"`
	UnitPrice   models.Money `json:"precio_unitario"`
	LineTotal   models.Money `json:"total_linea"`
}

// PricingService resuelve precios de venta del catálogo
type PricingService struct {
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
}

// NewPricingService crea el servicio de precios
func NewPricingService(productRepo repository.ProductRepository, offerRepo repository.OfferRepository) *PricingService {
	return &PricingService{
		productRepo: productRepo,
		offerRepo:   offerRepo,
	}
}

// ResolvePrices calcula el precio de cada renglón y el subtotal del carrito.
// El subtotal redondea primero cada renglón y después la suma, en ese orden.
func (s *PricingService) ResolvePrices(items []QuoteItemInput) (models.Money, []PricedItem, error) {
	barcodes := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		code := strings.TrimSpace(item.Barcode)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		barcodes = append(barcodes, code)
	}
	if len(barcodes) == 0 {
		return models.Money{}, nil, ErrQuoteItemsInvalid
	}

	products, err := s.productRepo.ListByBarcodes(barcodes)
	if err != nil {
		return models.Money{}, nil, err
	}
	productByBarcode := make(map[string]*models.Product, len(products))
	for i := range products {
		productByBarcode[products[i].Barcode] = &products[i]
	}

	offers, err := s.offerRepo.ListActiveByBarcodes(barcodes)
	if err != nil {
		return models.Money{}, nil, err
	}
	overrideByBarcode := make(map[string]decimal.Decimal, len(offers))
	for _, offer := range offers {
		price := offer.OfferPrice.Decimal
		if current, ok := overrideByBarcode[offer.Barcode]; !ok || price.LessThan(current) {
			overrideByBarcode[offer.Barcode] = price
		}
	}

	priced := make([]PricedItem, 0, len(items))
	sum := decimal.Zero
	for _, item := range items {
		code := strings.TrimSpace(item.Barcode)
		if code == "" {
			continue
		}
		product, ok := productByBarcode[code]
		if !ok || !product.Enabled {
			return models.Money{}, nil, fmt.Errorf("%w: %s", ErrProductNotFound, code)
		}

		price := s.effectivePrice(product, overrideByBarcode)
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lineTotal := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
		sum = sum.Add(lineTotal)

		description := strings.TrimSpace(item.DisplayName)
		if description == "" {
			description = product.Description
		}
		priced = append(priced, PricedItem{
			Barcode:     code,
			Description: description,
			Quantity:    quantity,
			UnitPrice:   models.NewMoneyFromDecimal(price),
			LineTotal:   models.NewMoneyFromDecimal(lineTotal),
		})
	}

	return models.NewMoneyFromDecimal(sum.Round(2)), priced, nil
}

// effectivePrice precio de oferta activa si existe (la menor cuando hay
// varias), si no el precio de lista según el código de IVA.
func (s *PricingService) effectivePrice(product *models.Product, overrides map[string]decimal.Decimal) decimal.Decimal {
	if override, ok := overrides[product.Barcode]; ok {
		return override.Round(2)
	}
	return s.listPrice(product)
}

// listPrice precio de lista: base sin IVA por el factor del código de IVA
// más el impuesto interno sobre el costo, cada componente redondeado aparte.
func (s *PricingService) listPrice(product *models.Product) decimal.Decimal {
	factor := taxFactorStandard
	switch product.TaxCode {
	case constants.TaxCodeReduced:
		factor = taxFactorReduced
	case constants.TaxCodeExempt:
		factor = decimal.NewFromInt(1)
	}
	base := product.BaseNoTax.Decimal.Mul(factor).Round(2)
	importTax := product.Cost.Decimal.Mul(product.ImportTaxPct.Decimal).Div(oneHundred).Round(2)
	return base.Add(importTax)
}
