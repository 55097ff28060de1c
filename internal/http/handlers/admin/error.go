package admin

import (
	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError responde un error de negocio; los errores internos se
// registran con el request y el cliente recibe solo el mensaje.
func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil && code == response.CodeInternal {
		logger.Errorw("admin_handler_error",
			"path", c.FullPath(),
			"code", code,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}
