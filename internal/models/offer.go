package models

import (
	"time"

	"gorm.io/gorm"
)

// Offer precio alternativo temporal (oferta/destacado/liquidación)
type Offer struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                                        // clave primaria
	Barcode    string         `gorm:"column:codigo_barras;index;not null" json:"codigo_barras"`                    // código de barras del artículo
	Kind       string         `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`                           // tipo (oferta/destacado/liquidacion)
	OfferPrice Money          `gorm:"column:precio_oferta;type:decimal(20,2);not null" json:"precio_oferta"`       // precio vigente mientras esté activa
	IsActive   bool           `gorm:"column:activo;not null;default:true;index" json:"activo"`                     // si está activa
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                                     // fecha de creación
	UpdatedAt  time.Time      `json:"updated_at"`                                                                  // fecha de actualización
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                                              // baja lógica
}

// TableName nombre de la tabla
func (Offer) TableName() string {
	return "ofertas"
}
