package service

import (
	"strings"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"github.com/shopspring/decimal"
)

// OfferAdminService administración de ofertas (precios alternativos)
type OfferAdminService struct {
	offerRepo   repository.OfferRepository
	productRepo repository.ProductRepository
}

// NewOfferAdminService crea el servicio de administración de ofertas
func NewOfferAdminService(offerRepo repository.OfferRepository, productRepo repository.ProductRepository) *OfferAdminService {
	return &OfferAdminService{
		offerRepo:   offerRepo,
		productRepo: productRepo,
	}
}

// OfferInput datos de alta o modificación de una oferta
type OfferInput struct {
	Barcode    string
	Kind       string
	OfferPrice models.Money
	IsActive   *bool
}

func validOfferKind(kind string) bool {
	switch kind {
	case constants.OfferTypeOffer, constants.OfferTypeFeatured, constants.OfferTypeClearance:
		return true
	}
	return false
}

func (s *OfferAdminService) validateInput(input OfferInput) (string, error) {
	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return "", ErrOfferBarcodeUnknown
	}
	if !validOfferKind(input.Kind) {
		return "", ErrOfferKindInvalid
	}
	if input.OfferPrice.Decimal.LessThanOrEqual(decimal.Zero) {
		return "", ErrOfferPriceInvalid
	}
	product, err := s.productRepo.GetByBarcode(barcode)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", ErrOfferBarcodeUnknown
	}
	return barcode, nil
}

// Create da de alta una oferta sobre un artículo existente del catálogo
func (s *OfferAdminService) Create(input OfferInput) (*models.Offer, error) {
	barcode, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	offer := &models.Offer{
		Barcode:    barcode,
		Kind:       input.Kind,
		OfferPrice: input.OfferPrice,
		IsActive:   isActive,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Update modifica una oferta existente
func (s *OfferAdminService) Update(id uint, input OfferInput) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	barcode, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	offer.Barcode = barcode
	offer.Kind = input.Kind
	offer.OfferPrice = input.OfferPrice
	if input.IsActive != nil {
		offer.IsActive = *input.IsActive
	}

	if err := s.offerRepo.Update(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Delete elimina una oferta
func (s *OfferAdminService) Delete(id uint) error {
	offer, err := s.offerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if offer == nil {
		return ErrOfferNotFound
	}
	return s.offerRepo.Delete(id)
}

// Get obtiene una oferta por ID
func (s *OfferAdminService) Get(id uint) (*models.Offer, error) {
	offer, err := s.offerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// List devuelve el listado paginado de ofertas
func (s *OfferAdminService) List(filter repository.OfferListFilter) ([]models.Offer, int64, error) {
	return s.offerRepo.List(filter)
}
