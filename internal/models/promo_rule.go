package models

import (
	"time"

	"gorm.io/gorm"
)

// PromoRule regla promocional automática por umbral de subtotal
type PromoRule struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                                          // clave primaria
	Name        string         `gorm:"column:nombre;not null" json:"nombre"`                                          // nombre visible
	Kind        string         `gorm:"column:tipo;type:varchar(30);not null" json:"tipo"`                             // tipo (envio_gratis/descuento_porcentaje)
	IsActive    bool           `gorm:"column:activo;not null;default:true;index" json:"activo"`                       // si está activa
	Order       int            `gorm:"column:orden;not null;default:0;index" json:"orden"`                            // orden de evaluación
	MinSubtotal Money          `gorm:"column:monto_minimo;type:decimal(20,2);not null;default:0" json:"monto_minimo"` // umbral de subtotal
	Value       Money          `gorm:"column:valor;type:decimal(20,2);not null;default:0" json:"valor"`               // valor plano (sin uso en envio_gratis)
	DiscountPct Money          `gorm:"column:porcentaje_descuento;type:decimal(20,2);not null;default:0" json:"porcentaje_descuento"` // porcentaje de descuento (0-100)
	StartsAt    *time.Time     `gorm:"column:fecha_inicio;index" json:"fecha_inicio"`                                 // inicio de vigencia
	EndsAt      *time.Time     `gorm:"column:fecha_fin;index" json:"fecha_fin"`                                       // fin de vigencia
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                                       // fecha de creación
	UpdatedAt   time.Time      `json:"updated_at"`                                                                    // fecha de actualización
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                                // baja lógica
}

// TableName nombre de la tabla
func (PromoRule) TableName() string {
	return "promo_rules"
}
