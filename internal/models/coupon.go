package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon cupón de descuento ingresado por el cliente
type Coupon struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                                          // clave primaria
	Code        string         `gorm:"column:codigo;uniqueIndex;not null" json:"codigo"`                              // código normalizado (mayúsculas, sin espacios)
	Kind        string         `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`                             // tipo (porcentaje/monto_fijo)
	Value       Money          `gorm:"column:valor;type:decimal(20,2);not null" json:"valor"`                         // valor (porcentaje o monto fijo)
	MinSubtotal Money          `gorm:"column:monto_minimo;type:decimal(20,2);not null;default:0" json:"monto_minimo"` // subtotal mínimo para aplicar
	MaxUses     int            `gorm:"column:usos_maximos;not null;default:1" json:"usos_maximos"`                    // tope global de usos
	UsedCount   int            `gorm:"column:usos_actuales;not null;default:0" json:"usos_actuales"`                  // usos acumulados
	StartsAt    *time.Time     `gorm:"column:fecha_inicio;index" json:"fecha_inicio"`                                 // inicio de vigencia
	EndsAt      *time.Time     `gorm:"column:fecha_fin;index" json:"fecha_fin"`                                       // fin de vigencia
	IsActive    bool           `gorm:"column:activo;not null;default:true;index" json:"activo"`                       // si está activo
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                                       // fecha de creación
	UpdatedAt   time.Time      `json:"updated_at"`                                                                    // fecha de actualización
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                                                // baja lógica
}

// TableName nombre de la tabla
func (Coupon) TableName() string {
	return "coupons"
}
