package admin

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
)

// OfferRequest alta/modificación de oferta
type OfferRequest struct {
	Barcode    string  `json:"codigo_barras" binding:"required"`
	Kind       string  `json:"tipo" binding:"required"`
	OfferPrice float64 `json:"precio_oferta" binding:"required"`
	IsActive   *bool   `json:"activo"`
}

func (r OfferRequest) toInput() service.OfferInput {
	return service.OfferInput{
		Barcode:    r.Barcode,
		Kind:       r.Kind,
		OfferPrice: models.NewMoneyFromFloat(r.OfferPrice),
		IsActive:   r.IsActive,
	}
}

func respondOfferError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrOfferNotFound):
		respondError(c, response.CodeNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrOfferKindInvalid),
		errors.Is(err, service.ErrOfferPriceInvalid),
		errors.Is(err, service.ErrOfferBarcodeUnknown):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	default:
		respondError(c, response.CodeInternal, "no se pudo procesar la oferta", err)
	}
}

// CreateOffer da de alta una oferta
func (h *Handler) CreateOffer(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}

	offer, err := h.OfferAdminService.Create(req.toInput())
	if err != nil {
		respondOfferError(c, err)
		return
	}
	response.Success(c, offer)
}

// UpdateOffer modifica una oferta
func (h *Handler) UpdateOffer(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}

	offer, err := h.OfferAdminService.Update(id, req.toInput())
	if err != nil {
		respondOfferError(c, err)
		return
	}
	response.Success(c, offer)
}

// DeleteOffer elimina una oferta
func (h *Handler) DeleteOffer(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	if err := h.OfferAdminService.Delete(id); err != nil {
		respondOfferError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAdminOffer obtiene una oferta
func (h *Handler) GetAdminOffer(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	offer, err := h.OfferAdminService.Get(id)
	if err != nil {
		respondOfferError(c, err)
		return
	}
	response.Success(c, offer)
}

// GetAdminOffers lista ofertas
func (h *Handler) GetAdminOffers(c *gin.Context) {
	page, pageSize := buildPaginationQuery(c)
	isActive, ok := parseBoolQuery(c, "activo")
	if !ok {
		respondError(c, response.CodeBadRequest, "filtro activo inválido", nil)
		return
	}

	offers, total, err := h.OfferAdminService.List(repository.OfferListFilter{
		Barcode:  c.Query("codigo_barras"),
		Kind:     c.Query("tipo"),
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "no se pudo listar las ofertas", err)
		return
	}

	response.SuccessWithPage(c, offers, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
