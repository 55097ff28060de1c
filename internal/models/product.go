package models

import (
	"time"

	"gorm.io/gorm"
)

// Product artículo del catálogo
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                                      // clave primaria
	Code          string         `gorm:"column:codigo;uniqueIndex;not null" json:"codigo"`                          // código interno
	Barcode       string         `gorm:"column:codigo_barras;uniqueIndex;not null" json:"codigo_barras"`            // código de barras
	Description   string         `gorm:"column:descripcion" json:"descripcion"`                                     // descripción
	Cost          Money          `gorm:"column:costo;type:decimal(20,2);not null;default:0" json:"costo"`           // costo de reposición
	BaseNoTax     Money          `gorm:"column:precio_sin_iva_4;type:decimal(20,2);not null;default:0" json:"precio_sin_iva_4"` // precio base sin IVA
	TaxCode       int            `gorm:"column:codigo_iva;not null;default:0" json:"codigo_iva"`                    // código de IVA (0=21%, 1=10.5%, 2=exento)
	ImportTaxPct  Money          `gorm:"column:imp_interno_pct;type:decimal(20,2);not null;default:0" json:"imp_interno_pct"` // impuesto interno (%) sobre el costo
	Enabled       bool           `gorm:"column:habilitado;not null;default:true;index" json:"habilitado"`           // habilitado para la venta
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                                   // fecha de creación
	UpdatedAt     time.Time      `json:"updated_at"`                                                                // fecha de actualización
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                                            // baja lógica
}

// TableName nombre de la tabla
func (Product) TableName() string {
	return "productos"
}
