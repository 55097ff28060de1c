package service

import (
	"context"
	"strings"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRequest pedido de cotización del carrito
type QuoteRequest struct {
	Items          []QuoteItemInput `json:"items" binding:"required"`
	DeliveryOption string           `json:"forma_entrega"`
	Address        string           `json:"direccion"`
	CouponCode     string           `json:"cupon"`
}

// QuoteSnapshot foto inmutable de los valores intermedios de una
// cotización. Es solo informativa, nunca se vuelve a interpretar.
type QuoteSnapshot struct {
	SnapshotID         string       `json:"snapshot_id"`
	Subtotal           models.Money `json:"subtotal"`
	RawShipping        models.Money `json:"envio_bruto"`
	FinalShipping      models.Money `json:"envio_final"`
	RuleDiscount       models.Money `json:"descuento_reglas"`
	SubtotalAfterRules models.Money `json:"subtotal_con_reglas"`
	CouponDiscount     models.Money `json:"descuento_cupon"`
	Total              models.Money `json:"total"`
	GeneratedAt        time.Time    `json:"generado_en"`
}

// Quote cotización completa del carrito
type Quote struct {
	Subtotal           models.Money  `json:"subtotal"`
	Shipping           models.Money  `json:"envio"`
	RuleDiscount       models.Money  `json:"descuento_reglas"`
	CouponDiscount     models.Money  `json:"descuento_cupon"`
	Total              models.Money  `json:"total"`
	FreeShipping       bool          `json:"envio_gratis"`
	FreeShippingRuleID uint          `json:"regla_envio_gratis_id,omitempty"`
	DiscountRuleID     uint          `json:"regla_descuento_id,omitempty"`
	CouponID           uint          `json:"cupon_id,omitempty"`
	Items              []PricedItem  `json:"items"`
	Snapshot           QuoteSnapshot `json:"snapshot"`
}

// QuoteService arma la cotización completa de un carrito
type QuoteService struct {
	pricingService  *PricingService
	shippingService *ShippingService
	ruleService     *PromoRuleService
	couponService   *CouponService
}

// NewQuoteService crea el orquestador de cotizaciones
func NewQuoteService(
	pricingService *PricingService,
	shippingService *ShippingService,
	ruleService *PromoRuleService,
	couponService *CouponService,
) *QuoteService {
	return &QuoteService{
		pricingService:  pricingService,
		shippingService: shippingService,
		ruleService:     ruleService,
		couponService:   couponService,
	}
}

// GetQuote ejecuta el pipeline de cotización en orden fijo: precios,
// envío, reglas, cupón, total. Cualquier error aborta la cotización
// entera, incluido un cupón inválido: el cupón nunca se ignora en
// silencio.
func (s *QuoteService) GetQuote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	subtotal, items, err := s.pricingService.ResolvePrices(req.Items)
	if err != nil {
		return nil, err
	}

	rawShipping, err := s.shippingService.CalculateCost(ctx, req.DeliveryOption, req.Address)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleService.ApplyRules(subtotal, rawShipping)
	if err != nil {
		return nil, err
	}

	subtotalAfterRules := models.NewMoneyFromDecimal(
		subtotal.Decimal.Sub(rules.DiscountAmount.Decimal).Round(2),
	)

	var couponDiscount models.Money
	var couponID uint
	if strings.TrimSpace(req.CouponCode) != "" {
		discount, coupon, err := s.couponService.Validate(req.CouponCode, subtotalAfterRules)
		if err != nil {
			return nil, err
		}
		couponDiscount = discount
		couponID = coupon.ID
	}

	total := subtotal.Decimal.
		Sub(rules.DiscountAmount.Decimal).
		Sub(couponDiscount.Decimal).
		Add(rules.FinalShipping.Decimal).
		Round(2)
	if total.LessThan(decimal.Zero) {
		total = decimal.Zero
	}
	totalMoney := models.NewMoneyFromDecimal(total)

	snapshot := QuoteSnapshot{
		SnapshotID:         uuid.NewString(),
		Subtotal:           subtotal,
		RawShipping:        rawShipping,
		FinalShipping:      rules.FinalShipping,
		RuleDiscount:       rules.DiscountAmount,
		SubtotalAfterRules: subtotalAfterRules,
		CouponDiscount:     couponDiscount,
		Total:              totalMoney,
		GeneratedAt:        time.Now().UTC(),
	}

	return &Quote{
		Subtotal:           subtotal,
		Shipping:           rules.FinalShipping,
		RuleDiscount:       rules.DiscountAmount,
		CouponDiscount:     couponDiscount,
		Total:              totalMoney,
		FreeShipping:       rules.FreeShipping,
		FreeShippingRuleID: rules.FreeShippingRuleID,
		DiscountRuleID:     rules.DiscountRuleID,
		CouponID:           couponID,
		Items:              items,
		Snapshot:           snapshot,
	}, nil
}
