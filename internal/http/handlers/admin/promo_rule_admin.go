package admin

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PromoRuleRequest alta/modificación de regla promocional
type PromoRuleRequest struct {
	Name        string  `json:"nombre" binding:"required"`
	Kind        string  `json:"tipo" binding:"required"`
	Order       int     `json:"orden"`
	MinSubtotal float64 `json:"monto_minimo"`
	Value       float64 `json:"valor"`
	DiscountPct float64 `json:"porcentaje_descuento"`
	StartsAt    string  `json:"fecha_inicio"`
	EndsAt      string  `json:"fecha_fin"`
	IsActive    *bool   `json:"activo"`
}

func (r PromoRuleRequest) toInput() (service.PromoRuleInput, error) {
	startsAt, err := parseTimeNullable(r.StartsAt)
	if err != nil {
		return service.PromoRuleInput{}, err
	}
	endsAt, err := parseTimeNullable(r.EndsAt)
	if err != nil {
		return service.PromoRuleInput{}, err
	}
	return service.PromoRuleInput{
		Name:        r.Name,
		Kind:        r.Kind,
		Order:       r.Order,
		MinSubtotal: models.NewMoneyFromFloat(r.MinSubtotal),
		Value:       models.NewMoneyFromFloat(r.Value),
		DiscountPct: models.NewMoneyFromFloat(r.DiscountPct),
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsActive:    r.IsActive,
	}, nil
}

func respondPromoRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPromoRuleNotFound):
		respondError(c, response.CodeNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrPromoRuleNameRequired),
		errors.Is(err, service.ErrPromoRuleKindInvalid),
		errors.Is(err, service.ErrPromoRulePctInvalid),
		errors.Is(err, service.ErrPromoRuleWindowInvalid):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	default:
		respondError(c, response.CodeInternal, "no se pudo procesar la regla", err)
	}
}

// CreatePromoRule da de alta una regla promocional
func (h *Handler) CreatePromoRule(c *gin.Context) {
	var req PromoRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "fecha de vigencia inválida", err)
		return
	}

	rule, err := h.PromoRuleAdminService.Create(input)
	if err != nil {
		respondPromoRuleError(c, err)
		return
	}
	response.Success(c, rule)
}

// UpdatePromoRule modifica una regla
func (h *Handler) UpdatePromoRule(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	var req PromoRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "pedido inválido", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "fecha de vigencia inválida", err)
		return
	}

	rule, err := h.PromoRuleAdminService.Update(id, input)
	if err != nil {
		respondPromoRuleError(c, err)
		return
	}
	response.Success(c, rule)
}

// DeletePromoRule elimina una regla
func (h *Handler) DeletePromoRule(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	if err := h.PromoRuleAdminService.Delete(id); err != nil {
		respondPromoRuleError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// GetAdminPromoRule obtiene una regla
func (h *Handler) GetAdminPromoRule(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "identificador inválido", nil)
		return
	}
	rule, err := h.PromoRuleAdminService.Get(id)
	if err != nil {
		respondPromoRuleError(c, err)
		return
	}
	response.Success(c, rule)
}

// GetAdminPromoRules lista reglas
func (h *Handler) GetAdminPromoRules(c *gin.Context) {
	page, pageSize := buildPaginationQuery(c)
	isActive, ok := parseBoolQuery(c, "activo")
	if !ok {
		respondError(c, response.CodeBadRequest, "filtro activo inválido", nil)
		return
	}

	rules, total, err := h.PromoRuleAdminService.List(repository.PromoRuleListFilter{
		Kind:     c.Query("tipo"),
		IsActive: isActive,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "no se pudo listar las reglas", err)
		return
	}

	response.SuccessWithPage(c, rules, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}
