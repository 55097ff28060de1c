package public

import "github.com/mercadito-app/mercadito-api/internal/provider"

// Handler handlers de la API pública del storefront
type Handler struct {
	*provider.Container
}

// New crea el handler público
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
