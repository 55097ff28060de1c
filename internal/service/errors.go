package service

import "errors"

// Errores de cotización
var (
	ErrQuoteItemsInvalid = errors.New("no hay artículos válidos para cotizar")
	ErrProductNotFound   = errors.New("producto no encontrado o deshabilitado")
	ErrGeocodingFailed   = errors.New("no pudimos ubicar la dirección indicada")
	ErrOutOfServiceArea  = errors.New("la dirección está fuera del área de entrega")
)

// Errores de cupones. El cliente ve estos mensajes tal cual, por eso un
// código inexistente y uno desactivado comparten el mismo error.
var (
	ErrCouponInvalid            = errors.New("el cupón ingresado no es válido")
	ErrCouponNotStarted         = errors.New("el cupón todavía no está vigente")
	ErrCouponExpired            = errors.New("el cupón está vencido")
	ErrCouponExhausted          = errors.New("el cupón no tiene usos disponibles")
	ErrCouponMinSubtotal        = errors.New("el subtotal no alcanza el mínimo del cupón")
	ErrCouponRedemptionConflict = errors.New("el cupón se agotó antes de completar el canje")
)

// Errores del panel de administración
var (
	ErrCouponNotFound       = errors.New("cupón no encontrado")
	ErrCouponCodeRequired   = errors.New("el código del cupón es obligatorio")
	ErrCouponCodeTaken      = errors.New("ya existe un cupón con ese código")
	ErrCouponKindInvalid    = errors.New("tipo de cupón inválido")
	ErrCouponValueInvalid   = errors.New("el valor del cupón es inválido")
	ErrCouponMaxUsesInvalid = errors.New("el tope de usos debe ser al menos 1")
	ErrCouponWindowInvalid  = errors.New("la vigencia del cupón es inválida")
	ErrCouponHasRedemptions = errors.New("el cupón tiene canjes registrados, desactívelo en lugar de eliminarlo")

	ErrPromoRuleNotFound      = errors.New("regla promocional no encontrada")
	ErrPromoRuleNameRequired  = errors.New("el nombre de la regla es obligatorio")
	ErrPromoRuleKindInvalid   = errors.New("tipo de regla promocional inválido")
	ErrPromoRulePctInvalid    = errors.New("el porcentaje de descuento debe estar entre 0 y 100")
	ErrPromoRuleWindowInvalid = errors.New("la vigencia de la regla es inválida")

	ErrOfferNotFound       = errors.New("oferta no encontrada")
	ErrOfferKindInvalid    = errors.New("tipo de oferta inválido")
	ErrOfferPriceInvalid   = errors.New("el precio de oferta debe ser mayor a cero")
	ErrOfferBarcodeUnknown = errors.New("el código de barras no corresponde a ningún artículo")
)
