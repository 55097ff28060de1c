package public

import (
	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateQuote cotiza un carrito: precios, envío, reglas y cupón
func (h *Handler) CreateQuote(c *gin.Context) {
	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "pedido de cotización inválido")
		return
	}

	quote, err := h.QuoteService.GetQuote(c.Request.Context(), req)
	if err != nil {
		respondWithMappedError(c, err, quoteErrorRules, response.CodeInternal, "no se pudo calcular la cotización")
		return
	}

	response.Success(c, quote)
}
