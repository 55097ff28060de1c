package admin

import "github.com/mercadito-app/mercadito-api/internal/provider"

// Handler handlers del panel de administración
type Handler struct {
	*provider.Container
}

// New crea el handler de administración
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
