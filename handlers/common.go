package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
)

// Error writes a failure response, mapping the error taxonomy onto HTTP
// statuses. Unknown errors fall through as 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidArgument, apperr.KindInvalidState, apperr.KindPaymentNotVerified:
		status = http.StatusBadRequest
	case apperr.KindInvalidTransition:
		status = http.StatusUnprocessableEntity
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnavailable:
		status = http.StatusServiceUnavailable
	case apperr.KindProvider:
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(apperr.KindOf(err))})
}

// opCtx bounds an operation by the store timeout so no request hangs on a
// slow store or provider call.
func opCtx(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
