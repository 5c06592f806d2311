package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type StatsHandler struct {
	Orders  *store.OrderStore
	Users   *store.UserStore
	Timeout time.Duration
}

// Statistics returns marketplace totals — admin only
func (h *StatsHandler) Statistics(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	totalUsers, err := h.Users.Count(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	totalOrders, err := h.Orders.Count(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	pendingOrders, err := h.Orders.CountByStatus(ctx, models.OrderPending)
	if err != nil {
		Error(c, err)
		return
	}
	deliveredOrders, err := h.Orders.CountByStatus(ctx, models.OrderDelivered)
	if err != nil {
		Error(c, err)
		return
	}
	totalPayment, err := h.Orders.RevenueTotal(ctx)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalPayment":    totalPayment,
		"totalUsers":      totalUsers,
		"totalOrders":     totalOrders,
		"pendingOrders":   pendingOrders,
		"deliveredOrders": deliveredOrders,
	})
}
