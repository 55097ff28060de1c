package repository

import (
	"github.com/mercadito-app/mercadito-api/internal/models"

	"gorm.io/gorm"
)

// CouponRedemptionRepository acceso a datos de canjes de cupones
type CouponRedemptionRepository interface {
	Create(redemption *models.CouponRedemption) error
	CountByCoupon(couponID uint) (int64, error)
	ListByCoupon(couponID uint, page, pageSize int) ([]models.CouponRedemption, int64, error)
	WithTx(tx *gorm.DB) *GormCouponRedemptionRepository
}

// GormCouponRedemptionRepository implementación GORM
type GormCouponRedemptionRepository struct {
	db *gorm.DB
}

// NewCouponRedemptionRepository crea el repositorio de canjes
func NewCouponRedemptionRepository(db *gorm.DB) *GormCouponRedemptionRepository {
	return &GormCouponRedemptionRepository{db: db}
}

// WithTx asocia una transacción
func (r *GormCouponRedemptionRepository) WithTx(tx *gorm.DB) *GormCouponRedemptionRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRedemptionRepository{db: tx}
}

// Create registra un canje
func (r *GormCouponRedemptionRepository) Create(redemption *models.CouponRedemption) error {
	return r.db.Create(redemption).Error
}

// CountByCoupon cuenta los canjes registrados de un cupón
func (r *GormCouponRedemptionRepository) CountByCoupon(couponID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CouponRedemption{}).Where("cupon_id = ?", couponID).Count(&count).Error
	return count, err
}

// ListByCoupon devuelve los canjes de un cupón, los más recientes primero
func (r *GormCouponRedemptionRepository) ListByCoupon(couponID uint, page, pageSize int) ([]models.CouponRedemption, int64, error) {
	var redemptions []models.CouponRedemption
	query := r.db.Model(&models.CouponRedemption{}).Where("cupon_id = ?", couponID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	if err := query.Order("id desc").Find(&redemptions).Error; err != nil {
		return nil, 0, err
	}
	return redemptions, total, nil
}
