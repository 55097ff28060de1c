package repository

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository acceso a datos del catálogo
type ProductRepository interface {
	GetByBarcode(barcode string) (*models.Product, error)
	ListByBarcodes(barcodes []string) ([]models.Product, error)
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository implementación GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository crea el repositorio de catálogo
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx asocia una transacción
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByBarcode obtiene un artículo por código de barras
func (r *GormProductRepository) GetByBarcode(barcode string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("codigo_barras = ?", barcode).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByBarcodes obtiene artículos por lote de códigos de barras
func (r *GormProductRepository) ListByBarcodes(barcodes []string) ([]models.Product, error) {
	if len(barcodes) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("codigo_barras IN ?", barcodes).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
