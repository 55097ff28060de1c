package service

import (
	"strings"
	"time"

	"github.com/mercadito-app/mercadito-api/internal/constants"
	"github.com/mercadito-app/mercadito-api/internal/models"
	"github.com/mercadito-app/mercadito-api/internal/repository"

	"github.com/shopspring/decimal"
)

// PromoRuleAdminService administración de reglas promocionales
type PromoRuleAdminService struct {
	ruleRepo repository.PromoRuleRepository
}

// NewPromoRuleAdminService crea el servicio de administración de reglas
func NewPromoRuleAdminService(ruleRepo repository.PromoRuleRepository) *PromoRuleAdminService {
	return &PromoRuleAdminService{ruleRepo: ruleRepo}
}

// PromoRuleInput datos de alta o modificación de una regla
type PromoRuleInput struct {
	Name        string
	Kind        string
	Order       int
	MinSubtotal models.Money
	Value       models.Money
	DiscountPct models.Money
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsActive    *bool
}

func validatePromoRuleInput(input PromoRuleInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrPromoRuleNameRequired
	}
	if input.Kind != constants.PromoRuleTypeFreeShipping && input.Kind != constants.PromoRuleTypePercentDiscount {
		return ErrPromoRuleKindInvalid
	}
	if input.Kind == constants.PromoRuleTypePercentDiscount {
		pct := input.DiscountPct.Decimal
		if pct.LessThan(decimal.Zero) || pct.GreaterThan(oneHundred) {
			return ErrPromoRulePctInvalid
		}
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return ErrPromoRuleWindowInvalid
	}
	return nil
}

// Create da de alta una regla promocional
func (s *PromoRuleAdminService) Create(input PromoRuleInput) (*models.PromoRule, error) {
	if err := validatePromoRuleInput(input); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	rule := &models.PromoRule{
		Name:        strings.TrimSpace(input.Name),
		Kind:        input.Kind,
		Order:       input.Order,
		MinSubtotal: input.MinSubtotal,
		Value:       input.Value,
		DiscountPct: input.DiscountPct,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		IsActive:    isActive,
	}
	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Update modifica una regla existente
func (s *PromoRuleAdminService) Update(id uint, input PromoRuleInput) (*models.PromoRule, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrPromoRuleNotFound
	}
	if err := validatePromoRuleInput(input); err != nil {
		return nil, err
	}

	rule.Name = strings.TrimSpace(input.Name)
	rule.Kind = input.Kind
	rule.Order = input.Order
	rule.MinSubtotal = input.MinSubtotal
	rule.Value = input.Value
	rule.DiscountPct = input.DiscountPct
	rule.StartsAt = input.StartsAt
	rule.EndsAt = input.EndsAt
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// Delete elimina una regla
func (s *PromoRuleAdminService) Delete(id uint) error {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return ErrPromoRuleNotFound
	}
	return s.ruleRepo.Delete(id)
}

// Get obtiene una regla por ID
func (s *PromoRuleAdminService) Get(id uint) (*models.PromoRule, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrPromoRuleNotFound
	}
	return rule, nil
}

// List devuelve el listado paginado de reglas
func (s *PromoRuleAdminService) List(filter repository.PromoRuleListFilter) ([]models.PromoRule, int64, error) {
	return s.ruleRepo.List(filter)
}
