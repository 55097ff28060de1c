package public

import (
	"github.com/mercadito-app/mercadito-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// StorefrontConfig configuración pública para el front
type StorefrontConfig struct {
	StoreAddress  string  `json:"direccion_local"`
	PickupKeyword string  `json:"palabra_retiro"`
	BaseFee       float64 `json:"cargo_base_envio"`
	PerKmRate     float64 `json:"tarifa_por_km"`
	MaxDistanceKm float64 `json:"distancia_maxima_km"`
}

// GetConfig expone los parámetros públicos de entrega
func (h *Handler) GetConfig(c *gin.Context) {
	response.Success(c, StorefrontConfig{
		StoreAddress:  h.Config.Store.Address,
		PickupKeyword: h.Config.Store.PickupKeyword,
		BaseFee:       h.Config.Delivery.BaseFee,
		PerKmRate:     h.Config.Delivery.PerKmRate,
		MaxDistanceKm: h.Config.Delivery.MaxDistanceKm,
	})
}
