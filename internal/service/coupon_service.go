package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"gorm.io/gorm"
)

// CouponService valida y canjea cupones de descuento
type CouponService struct {
	couponRepo     repository.CouponRepository
	redemptionRepo repository.CouponRedemptionRepository
}

// NewCouponService crea el servicio de cupones
func NewCouponService(couponRepo repository.CouponRepository, redemptionRepo repository.CouponRedemptionRepository) *CouponService {
	return &CouponService{
		couponRepo:     couponRepo,
		redemptionRepo: redemptionRepo,
	}
}

// NormalizeCouponCode pasa el código a mayúsculas y quita todo espacio,
// incluidos los internos (" vera no10 " y "VERANO10" son el mismo código)
func NormalizeCouponCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate valida un código contra el subtotal ya descontado por reglas
// y calcula el descuento. No modifica estado: se puede llamar las veces
// que haga falta con el mismo resultado.
func (s *CouponService) Validate(code string, subtotalAfterRules models.Money) (models.Money, *models.Coupon, error) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return models.Money{}, nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetActiveByCode(normalized)
	if err != nil {
		return models.Money{}, nil, err
	}
	if coupon == nil {
		return models.Money{}, nil, ErrCouponInvalid
	}

	now := time.Now()
	if coupon.StartsAt != nil && now.Before(*coupon.StartsAt) {
		return models.Money{}, coupon, ErrCouponNotStarted
	}
	if coupon.EndsAt != nil && now.After(*coupon.EndsAt) {
		return models.Money{}, coupon, ErrCouponExpired
	}
	if coupon.UsedCount >= coupon.MaxUses {
		return models.Money{}, coupon, ErrCouponExhausted
	}
	if subtotalAfterRules.Decimal.LessThan(coupon.MinSubtotal.Decimal) {
		return models.Money{}, coupon, fmt.Errorf("%w (mínimo %s)", ErrCouponMinSubtotal, coupon.MinSubtotal.String())
	}

	discount := s.calculateDiscount(coupon, subtotalAfterRules)
	return discount, coupon, nil
}

// calculateDiscount porcentaje acotado a 100, monto fijo acotado al subtotal
func (s *CouponService) calculateDiscount(coupon *models.Coupon, subtotal models.Money) models.Money {
	switch coupon.Kind {
	case constants.CouponTypeFixed:
		amount := coupon.Value.Decimal
		if amount.GreaterThan(subtotal.Decimal) {
			amount = subtotal.Decimal
		}
		return models.NewMoneyFromDecimal(amount.Round(2))
	default:
		pct := coupon.Value.Decimal
		if pct.GreaterThan(oneHundred) {
			pct = oneHundred
		}
		return models.NewMoneyFromDecimal(subtotal.Decimal.Mul(pct).Div(oneHundred).Round(2))
	}
}

// Redeem registra el canje de un cupón contra un pedido: inserta la fila
// de auditoría e incrementa el contador de usos en la misma transacción.
// El WHERE del incremento es el que serializa canjes concurrentes; cero
// filas afectadas aborta todo el canje. Si tx no es nil ambas escrituras
// se suman a esa transacción y el que confirma es el llamador.
func (s *CouponService) Redeem(couponID uint, orderID uint, appliedAmount models.Money, tx *gorm.DB) error {
	redeem := func(tx *gorm.DB) error {
		redemption := &models.CouponRedemption{
			CouponID:      couponID,
			OrderID:       orderID,
			AppliedAmount: appliedAmount,
		}
		if err := s.redemptionRepo.WithTx(tx).Create(redemption); err != nil {
			return err
		}
		affected, err := s.couponRepo.WithTx(tx).IncrementUsedCount(couponID, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCouponRedemptionConflict
		}
		return nil
	}

	if tx != nil {
		return redeem(tx)
	}
	return models.DB.Transaction(redeem)
}
