package public

import (
	"errors"

	"github.com/mercadito-app/mercadito-api/internal/http/response"
	"github.com/mercadito-app/mercadito-api/internal/logger"
	"github.com/mercadito-app/mercadito-api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError asocia un error de negocio con el código de la
// respuesta. El mensaje que ve el cliente es el del propio error.
type mappedHandlerError struct {
	target error
	code   int
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, err.Error())
			return
		}
	}
	// Los errores internos no mapeados se registran y el cliente recibe
	// un mensaje genérico para no filtrar detalles.
	logger.Errorw("public_handler_unmapped_error",
		"path", c.FullPath(),
		"error", err,
	)
	response.Error(c, fallbackCode, fallbackMsg)
}

var quoteErrorRules = []mappedHandlerError{
	{target: service.ErrQuoteItemsInvalid, code: response.CodeBadRequest},
	{target: service.ErrProductNotFound, code: response.CodeNotFound},
	{target: service.ErrGeocodingFailed, code: response.CodeBadRequest},
	{target: service.ErrOutOfServiceArea, code: response.CodeBadRequest},
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest},
	{target: service.ErrCouponExhausted, code: response.CodeBadRequest},
	{target: service.ErrCouponMinSubtotal, code: response.CodeBadRequest},
}
