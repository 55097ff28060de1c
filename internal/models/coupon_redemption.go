package models

import "time"

// CouponRedemption registro de canje de cupón (solo inserción, nunca se modifica)
type CouponRedemption struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                                            // clave primaria
	CouponID      uint      `gorm:"column:cupon_id;index;not null" json:"cupon_id"`                                  // cupón canjeado
	OrderID       uint      `gorm:"column:id_pedido;index;not null" json:"id_pedido"`                                // pedido asociado
	AppliedAmount Money     `gorm:"column:monto_aplicado;type:decimal(20,2);not null;default:0" json:"monto_aplicado"` // descuento aplicado
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                                         // fecha del canje
}

// TableName nombre de la tabla
func (CouponRedemption) TableName() string {
	return "coupon_redemptions"
}
