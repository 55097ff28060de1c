package constants

// Tipos de cupón
const (
	CouponTypePercent = "porcentaje" // descuento porcentual sobre el subtotal
	CouponTypeFixed   = "monto_fijo" // descuento de monto fijo
)

// Tipos de regla promocional
const (
	PromoRuleTypeFreeShipping    = "envio_gratis"         // envío gratis por umbral de subtotal
	PromoRuleTypePercentDiscount = "descuento_porcentaje" // descuento porcentual por umbral de subtotal
)

// Tipos de oferta (precio alternativo temporal)
const (
	OfferTypeOffer     = "oferta"
	OfferTypeFeatured  = "destacado"
	OfferTypeClearance = "liquidacion"
)

// Formas de entrega
const (
	DeliveryOptionPickup   = "local" // retiro en el local
	DeliveryOptionShipping = "envio" // envío a domicilio
)

// Códigos de IVA del catálogo
const (
	TaxCodeStandard = 0 // IVA 21%
	TaxCodeReduced  = 1 // IVA 10.5%
	TaxCodeExempt   = 2 // exento
)

// Tareas de cola
const (
	TaskCouponExpireSweep = "coupon:expire_sweep"
	QueueDefault          = "default"
)
