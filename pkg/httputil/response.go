package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vidaplus/clinic-api/pkg/errors"
)

// ErrorBody is the wire shape of every failure response.
type ErrorBody struct {
	Code    errors.ErrorCode `json:"code"`
	Field   string           `json:"field,omitempty"`
	Message string           `json:"message"`
}

// MessageBody wraps plain confirmation messages.
type MessageBody struct {
	Message string `json:"message"`
}

// RespondWithError maps an application error to its HTTP status and the
// structured {code, field, message} body. Unknown errors become a 500.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := errors.As(err); ok {
		c.JSON(appErr.HTTPStatus(), ErrorBody{
			Code:    appErr.Code,
			Field:   appErr.Field,
			Message: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    errors.ErrInternal,
		Message: "internal server error",
	})
}

// RespondWithMessage sends a confirmation message.
func RespondWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}
