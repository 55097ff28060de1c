package repository

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/models"

	"gorm.io/gorm"
)

// OfferRepository acceso a datos de ofertas (precios alternativos)
type OfferRepository interface {
	GetByID(id uint) (*models.Offer, error)
	ListActiveByBarcodes(barcodes []string) ([]models.Offer, error)
	Create(offer *models.Offer) error
	Update(offer *models.Offer) error
	Delete(id uint) error
	List(filter OfferListFilter) ([]models.Offer, int64, error)
	WithTx(tx *gorm.DB) *GormOfferRepository
}

// OfferListFilter filtros del listado de ofertas
type OfferListFilter struct {
	Barcode  string
	Kind     string
	IsActive *bool
	Page     int
	PageSize int
}

// GormOfferRepository implementación GORM
type GormOfferRepository struct {
	db *gorm.DB
}

// NewOfferRepository crea el repositorio de ofertas
func NewOfferRepository(db *gorm.DB) *GormOfferRepository {
	return &GormOfferRepository{db: db}
}

// WithTx asocia una transacción
func (r *GormOfferRepository) WithTx(tx *gorm.DB) *GormOfferRepository {
	if tx == nil {
		return r
	}
	return &GormOfferRepository{db: tx}
}

// GetByID obtiene una oferta por ID
func (r *GormOfferRepository) GetByID(id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

// ListActiveByBarcodes obtiene las ofertas activas para un lote de códigos de barras
func (r *GormOfferRepository) ListActiveByBarcodes(barcodes []string) ([]models.Offer, error) {
	if len(barcodes) == 0 {
		return []models.Offer{}, nil
	}
	var offers []models.Offer
	if err := r.db.Where("codigo_barras IN ? AND activo = ?", barcodes, true).Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

// Create crea una oferta
func (r *GormOfferRepository) Create(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

// Update actualiza una oferta
func (r *GormOfferRepository) Update(offer *models.Offer) error {
	return r.db.Save(offer).Error
}

// Delete elimina una oferta
func (r *GormOfferRepository) Delete(id uint) error {
	return r.db.Delete(&models.Offer{}, id).Error
}

// List devuelve el listado de ofertas
func (r *GormOfferRepository) List(filter OfferListFilter) ([]models.Offer, int64, error) {
	var offers []models.Offer
	query := r.db.Model(&models.Offer{})

	if filter.Barcode != "" {
		query = query.Where("codigo_barras = ?", filter.Barcode)
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

	if err := query.Order("id desc").Find(&offers).Error; err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}
