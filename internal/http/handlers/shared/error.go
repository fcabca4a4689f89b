package shared

import (
	"errors"

	"github.com/sara-ops/sara-api/internal/http/response"
	"github.com/sara-ops/sara-api/internal/logger"
	"github.com/sara-ops/sara-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error envelope, logging the original error when
// present.
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError maps service errors onto the envelope. Business
// refusals keep their own codes so clients can tell a declined operation
// from a technical failure.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrOrderItemNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCustomerNotApproved):
		response.Refused(c, "customer not yet approved")
	case errors.Is(err, service.ErrOrderDelivered):
		response.Refused(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserDisabled):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrCustomerNameTaken),
		errors.Is(err, service.ErrUsernameTaken):
		response.Error(c, response.CodeConflict, err.Error())
	case errors.Is(err, service.ErrCustomerNameRequired),
		errors.Is(err, service.ErrTaxIDRequired),
		errors.Is(err, service.ErrProductNameRequired),
		errors.Is(err, service.ErrNoItems),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrDuplicateProduct),
		errors.Is(err, service.ErrSpecialPriceRequired),
		errors.Is(err, service.ErrSpecialPriceNotAllowed),
		errors.Is(err, service.ErrWeightCountMismatch),
		errors.Is(err, service.ErrInvalidPriceTier),
		errors.Is(err, service.ErrInvalidDeliveryMode):
		response.BadRequest(c, err.Error())
	default:
		// Technical failures surface the underlying message.
		RespondError(c, response.CodeInternal, err.Error(), err)
	}
}
