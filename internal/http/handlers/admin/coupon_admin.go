package admin

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest alta/modificación de cupón
type CouponRequest struct {
	Code        string  `json:"codigo" binding:"required"`
	Kind        string  `json:"tipo" binding:"required"`
	Value       float64 `json:"valor" binding:"required"`
	MinSubtotal float64 `json:"monto_minimo"`
	MaxUses     int     `json:"usos_maximos"`
	StartsAt    string  `json:"fecha_inicio"`
	EndsAt      string  `json:"fecha_fin"`
	IsActive    *bool   `json:"activo"`
}

func (r CouponRequest) toInput() (service.CouponInput, error) {
	startsAt, err := parseTimeNullable(r.StartsAt)
	if err != nil {
		return service.CouponInput{}, err
	}
	endsAt, err := parseTimeNullable(r.EndsAt)
	if err != nil {
		return service.CouponInput{}, err
	}
	return service.CouponInput{
		Code:        r.Code,
		Kind:        r.Kind,
		Value:       models.NewMoneyFromFloat(r.Value),
		MinSubtotal: models.NewMoneyFromFloat(r.MinSubtotal),
		MaxUses:     r.MaxUses,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsActive:    r.IsActive,
	}, nil
}

func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		respondError(c, response.CodeNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrCouponCodeRequired),
		errors.Is(err, service.ErrCouponCodeTaken),
		errors.Is(err, service.ErrCouponKindInvalid),
		errors.Is(err, service.ErrCouponValueInvalid),
		errors.Is(err, service.ErrCouponMaxUsesInvalid),
		errors.Is(err, service.ErrCouponWindowInvalid),
		errors.Is(err, service.ErrCouponHasRedemptions):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	default:
		respondError(c, response.CodeInternal, "no se pudo procesar el cupón", err)
	}
}

// CreateCoupon da de alta un cupón
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "fecha de vigencia inválida", err)
		return
	}

	coupon, err := h.CouponAdminService.Create(input)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon modifica un cupón
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "fecha de vigencia inválida", err)
		return
	}

	coupon, err := h.CouponAdminService.Update(id, input)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon elimina un cupón sin canjes
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	if err := h.CouponAdminService.Delete(id); err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAdminCoupon obtiene un cupón
func (h *Handler) GetAdminCoupon(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	coupon, err := h.CouponAdminService.Get(id)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	response.Success(c, coupon)
}

// GetAdminCoupons lista cupones
func (h *Handler) GetAdminCoupons(c *gin.Context) {
	page, pageSize := buildPaginationQuery(c)
	isActive, ok := parseBoolQuery(c, "activo")
	if !ok {
		respondError(c, response.CodeBadRequest, "filtro activo inválido", nil)
		return
	}

	coupons, total, err := h.CouponAdminService.List(repository.CouponListFilter{
		Code:     service.NormalizeCouponCode(c.Query("codigo")),
		Kind:     c.Query("tipo"),
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "no se pudo listar los cupones", err)
		return
	}

	response.SuccessWithPage(c, coupons, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetAdminCouponRedemptions lista los canjes de un cupón
func (h *Handler) GetAdminCouponRedemptions(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	page, pageSize := buildPaginationQuery(c)

	redemptions, total, err := h.CouponAdminService.ListRedemptions(id, page, pageSize)
	if err != nil {
		respondCouponError(c, err)
		return
	}

	response.SuccessWithPage(c, redemptions, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
