package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/payments"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type PaymentHandler struct {
	Reconciler *payments.Reconciler
	Payments   *store.PaymentStore
	Timeout    time.Duration
}

type CreateCheckoutSessionRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// CreateCheckoutSession opens a hosted checkout session for an order and
// returns the redirect URL
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	result, err := h.Reconciler.CreateCheckoutSession(ctx, req.OrderID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "sessionId": result.SessionID})
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	OrderID   string `json:"orderId"`
}

// Confirm verifies a completed session with the provider and reconciles it.
// Safe to call more than once for the same session.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	result, err := h.Reconciler.ConfirmPayment(ctx, req.SessionID, req.OrderID)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"paymentId": result.PaymentID,
		"orderId":   result.OrderID,
		"amount":    result.Amount,
		"currency":  result.Currency,
	})
}

// List returns the full payment ledger — admin only
func (h *PaymentHandler) List(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	ledger, err := h.Payments.ListAll(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(ledger), "payments": ledger})
}
