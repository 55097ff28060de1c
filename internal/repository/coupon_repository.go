package repository

import (
	"errors"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/models"

	"gorm.io/gorm"
)

// CouponRepository acceso a datos de cupones
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	GetActiveByCode(code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(id uint) error
	List(filter CouponListFilter) ([]models.Coupon, int64, error)
	IncrementUsedCount(id uint, now time.Time) (int64, error)
	DeactivateExpired(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormCouponRepository
}

// CouponListFilter filtros del listado de cupones
type CouponListFilter struct {
	Code     string
	Kind     string
	IsActive *bool
	Page     int
	PageSize int
}

// GormCouponRepository implementación GORM
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository crea el repositorio de cupones
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx asocia una transacción
func (r *GormCouponRepository) WithTx(tx *gorm.DB) *GormCouponRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRepository{db: tx}
}

// GetByID obtiene un cupón por ID
func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByCode obtiene un cupón por código normalizado
func (r *GormCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.Where("codigo = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetActiveByCode obtiene un cupón activo por código normalizado.
// Los cupones inactivos quedan fuera a propósito: para el cliente un
// código desactivado es indistinguible de uno inexistente.
func (r *GormCouponRepository) GetActiveByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.Where("codigo = ? AND activo = ?", code, true).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// Create crea un cupón
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// Update actualiza un cupón
func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// Delete elimina un cupón
func (r *GormCouponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// List devuelve el listado de cupones
func (r *GormCouponRepository) List(filter CouponListFilter) ([]models.Coupon, int64, error) {
	var coupons []models.Coupon
	query := r.db.Model(&models.Coupon{})

	if filter.Code != "" {
		query = query.Where("codigo = ?", filter.Code)
	}
	if filter.Kind != "" {
		query = query.Where("tipo = ?", filter.Kind)
	}
	if filter.IsActive != nil {
		query = query.Where("activo = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// IncrementUsedCount incrementa el contador de usos de forma condicional.
// El WHERE con usos_actuales < usos_maximos hace de chequeo-e-incremento
// atómico: si no afecta filas el cupón ya no admite canjes.
func (r *GormCouponRepository) IncrementUsedCount(id uint, now time.Time) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("id = ? AND activo = ? AND usos_actuales < usos_maximos", id, true).
		Updates(map[string]interface{}{
			"usos_actuales": gorm.Expr("usos_actuales + 1"),
			"updated_at":    now,
		})
	return result.RowsAffected, result.Error
}

// DeactivateExpired desactiva los cupones cuya vigencia terminó
func (r *GormCouponRepository) DeactivateExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("activo = ? AND fecha_fin IS NOT NULL AND fecha_fin < ?", true, now).
		Updates(map[string]interface{}{
			"activo":     false,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}
