package service

import (
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponAdminService administración de cupones
type CouponAdminService struct {
	couponRepo     repository.CouponRepository
	redemptionRepo repository.CouponRedemptionRepository
}

// NewCouponAdminService crea el servicio de administración de cupones
func NewCouponAdminService(couponRepo repository.CouponRepository, redemptionRepo repository.CouponRedemptionRepository) *CouponAdminService {
	return &CouponAdminService{
		couponRepo:     couponRepo,
		redemptionRepo: redemptionRepo,
	}
}

// CouponInput datos de alta o modificación de un cupón
type CouponInput struct {
	Code        string
	Kind        string
	Value       models.Money
	MinSubtotal models.Money
	MaxUses     int
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    *bool
}

func (s *CouponAdminService) validateInput(input CouponInput) (string, error) {
	code := NormalizeCouponCode(input.Code)
	if code == "" {
		return "", ErrCouponCodeRequired
	}
	if input.Kind != constants.CouponTypePercent && input.Kind != constants.CouponTypeFixed {
		return "", ErrCouponKindInvalid
	}
	if input.Value.Decimal.LessThanOrEqual(decimal.Zero) {
		return "", ErrCouponValueInvalid
	}
	if input.Kind == constants.CouponTypePercent && input.Value.Decimal.GreaterThan(oneHundred) {
		return "", ErrCouponValueInvalid
	}
	if input.MinSubtotal.Decimal.LessThan(decimal.Zero) {
		return "", ErrCouponValueInvalid
	}
	if input.MaxUses < 1 {
		return "", ErrCouponMaxUsesInvalid
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return "", ErrCouponWindowInvalid
	}
	return code, nil
}

// Create da de alta un cupón con el código ya normalizado
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	code, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCouponCodeTaken
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	coupon := &models.Coupon{
		Code:        code,
		Kind:        input.Kind,
		Value:       input.Value,
		MinSubtotal: input.MinSubtotal,
		MaxUses:     input.MaxUses,
		UsedCount:   0,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		IsActive:    isActive,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update modifica un cupón existente. El contador de usos no se toca
// desde acá: solo el canje lo incrementa.
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	code, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	if code != coupon.Code {
		existing, err := s.couponRepo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrCouponCodeTaken
		}
	}

	coupon.Code = code
	coupon.Kind = input.Kind
	coupon.Value = input.Value
	coupon.MinSubtotal = input.MinSubtotal
	coupon.MaxUses = input.MaxUses
	coupon.StartsAt = input.StartsAt
	coupon.EndsAt = input.EndsAt
	if input.IsActive != nil {
		coupon.IsActive = *input.IsActive
	}

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete elimina un cupón sin canjes. Con canjes registrados la baja se
// rechaza para no perder la auditoría: hay que desactivarlo.
func (s *CouponAdminService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}

	count, err := s.redemptionRepo.CountByCoupon(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCouponHasRedemptions
	}
	return s.couponRepo.Delete(id)
}

// Get obtiene un cupón por ID
func (s *CouponAdminService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// List devuelve el listado paginado de cupones
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// ListRedemptions devuelve los canjes de un cupón
func (s *CouponAdminService) ListRedemptions(couponID uint, page, pageSize int) ([]models.CouponRedemption, int64, error) {
	coupon, err := s.couponRepo.GetByID(couponID)
	if err != nil {
		return nil, 0, err
	}
	if coupon == nil {
		return nil, 0, ErrCouponNotFound
	}
	return s.redemptionRepo.ListByCoupon(couponID, page, pageSize)
}

// DeactivateExpired desactiva los cupones vencidos; lo usa la tarea
// periódica de limpieza
func (s *CouponAdminService) DeactivateExpired(now time.Time) (int64, error) {
	return s.couponRepo.DeactivateExpired(now)
}
