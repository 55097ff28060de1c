package service

import (
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"github.com/shopspring/decimal"
)

// PromoRuleResult resultado de evaluar las reglas promocionales
type PromoRuleResult struct {
	FreeShipping       bool         `json:"envio_gratis"`
	FinalShipping      models.Money `json:"envio_final"`
	DiscountPct        models.Money `json:"porcentaje_descuento"`
	DiscountAmount     models.Money `json:"monto_descuento"`
	FreeShippingRuleID uint         `json:"regla_envio_gratis_id,omitempty"`
	DiscountRuleID     uint         `json:"regla_descuento_id,omitempty"`
}

// PromoRuleService evalúa las reglas promocionales vigentes
type PromoRuleService struct {
	ruleRepo repository.PromoRuleRepository
}

// NewPromoRuleService crea el motor de reglas promocionales
func NewPromoRuleService(ruleRepo repository.PromoRuleRepository) *PromoRuleService {
	return &PromoRuleService{ruleRepo: ruleRepo}
}

// ApplyRules aplica las reglas vigentes sobre un subtotal y un costo de
// envío. Gana la primera regla de envío gratis cuyo umbral se cumple y,
// entre las de descuento que califican, la de mayor porcentaje (empate:
// la primera en orden de evaluación). Ambas pueden aplicar a la vez.
func (s *PromoRuleService) ApplyRules(subtotal, shipping models.Money) (PromoRuleResult, error) {
	result := PromoRuleResult{
		FinalShipping: models.NewMoneyFromDecimal(shipping.Decimal),
	}

	rules, err := s.ruleRepo.ListActive(time.Now())
	if err != nil {
		return result, err
	}

	bestPct := decimal.Zero
	for _, rule := range rules {
		if subtotal.Decimal.LessThan(rule.MinSubtotal.Decimal) {
			continue
		}
		switch rule.Kind {
		case constants.PromoRuleTypeFreeShipping:
			if !result.FreeShipping {
				result.FreeShipping = true
				result.FreeShippingRuleID = rule.ID
			}
		case constants.PromoRuleTypePercentDiscount:
			if rule.DiscountPct.Decimal.GreaterThan(bestPct) {
				bestPct = rule.DiscountPct.Decimal
				result.DiscountRuleID = rule.ID
			}
		}
	}

	if bestPct.GreaterThan(decimal.Zero) {
		result.DiscountPct = models.NewMoneyFromDecimal(bestPct)
		result.DiscountAmount = models.NewMoneyFromDecimal(
			subtotal.Decimal.Mul(bestPct).Div(oneHundred).Round(2),
		)
	}

	if result.FreeShipping {
		result.FinalShipping = models.Money{}
	}
	return result, nil
}
