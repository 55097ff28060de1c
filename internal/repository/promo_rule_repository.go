package repository

import (
	"errors"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/models"

	"gorm.io/gorm"
)

// PromoRuleRepository acceso a datos de reglas promocionales
type PromoRuleRepository interface {
	GetByID(id uint) (*models.PromoRule, error)
	ListActive(now time.Time) ([]models.PromoRule, error)
	Create(rule *models.PromoRule) error
	Update(rule *models.PromoRule) error
	Delete(id uint) error
	List(filter PromoRuleListFilter) ([]models.PromoRule, int64, error)
	WithTx(tx *gorm.DB) *GormPromoRuleRepository
}

// PromoRuleListFilter filtros del listado de reglas
type PromoRuleListFilter struct {
	Kind     string
	IsActive *bool
	Page     int
	PageSize int
}

// GormPromoRuleRepository implementación GORM
type GormPromoRuleRepository struct {
	db *gorm.DB
}

// NewPromoRuleRepository crea el repositorio de reglas promocionales
func NewPromoRuleRepository(db *gorm.DB) *GormPromoRuleRepository {
	return &GormPromoRuleRepository{db: db}
}

// WithTx asocia una transacción
func (r *GormPromoRuleRepository) WithTx(tx *gorm.DB) *GormPromoRuleRepository {
	if tx == nil {
		return r
	}
	return &GormPromoRuleRepository{db: tx}
}

// GetByID obtiene una regla por ID
func (r *GormPromoRuleRepository) GetByID(id uint) (*models.PromoRule, error) {
	var rule models.PromoRule
	if err := r.db.First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// ListActive obtiene las reglas activas vigentes ordenadas por orden de evaluación
func (r *GormPromoRuleRepository) ListActive(now time.Time) ([]models.PromoRule, error) {
	var rules []models.PromoRule
	query := r.db.Where("activo = ?", true)
	query = query.Where("(fecha_inicio IS NULL OR fecha_inicio <= ?)", now)
	query = query.Where("(fecha_fin IS NULL OR fecha_fin >= ?)", now)
	if err := query.Order("orden asc, id asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Create crea una regla
func (r *GormPromoRuleRepository) Create(rule *models.PromoRule) error {
	return r.db.Create(rule).Error
}

// Update actualiza una regla
func (r *GormPromoRuleRepository) Update(rule *models.PromoRule) error {
	return r.db.Save(rule).Error
}

// Delete elimina una regla
func (r *GormPromoRuleRepository) Delete(id uint) error {
	return r.db.Delete(&models.PromoRule{}, id).Error
}

// List devuelve el listado de reglas
func (r *GormPromoRuleRepository) List(filter PromoRuleListFilter) ([]models.PromoRule, int64, error) {
	var rules []models.PromoRule
	query := r.db.Model(&models.PromoRule{})

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

	if err := query.Order("orden asc, id asc").Find(&rules).Error; err != nil {
		return nil, 0, err
	}
	return rules, total, nil
}
