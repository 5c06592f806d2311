package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/middleware"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/payments"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type OrderHandler struct {
	Orders     *store.OrderStore
	Reconciler *payments.Reconciler
	Timeout    time.Duration
}

type CreateOrderRequest struct {
	FoodID       string  `json:"foodId" binding:"required"`
	MealName     string  `json:"mealName" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	ChefID       string  `json:"chefId"`
	ChefName     string  `json:"chefName"`
	DeliveryTime string  `json:"deliveryTime"`
	UserEmail    string  `json:"userEmail" binding:"required,email"`
	UserAddress  string  `json:"userAddress"`
}

// Create places a new order. Payment starts Pending; settlement happens
// through the checkout session flow.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		FoodID:        req.FoodID,
		MealName:      req.MealName,
		Price:         req.Price,
		Quantity:      req.Quantity,
		ChefID:        req.ChefID,
		ChefName:      req.ChefName,
		DeliveryTime:  req.DeliveryTime,
		UserEmail:     req.UserEmail,
		UserAddress:   req.UserAddress,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Orders.Create(ctx, &order); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListAll returns every order — admin only
func (h *OrderHandler) ListAll(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListForUser returns the caller's orders; path email must match the caller.
func (h *OrderHandler) ListForUser(c *gin.Context) {
	email := c.Param("email")
	if middleware.GetEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	orders, err := h.Orders.ListByUserEmail(ctx, email)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListForChef returns all orders routed to a chef
func (h *OrderHandler) ListForChef(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	orders, err := h.Orders.ListByChefID(ctx, c.Param("chefId"))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	OrderStatus models.OrderStatus `json:"orderStatus" binding:"required"`
}

// UpdateStatus moves an order through the lifecycle state machine
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	order, err := h.Reconciler.UpdateOrderStatus(ctx, c.Param("id"), req.OrderStatus)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Order status updated successfully",
		"orderId":     order.ID,
		"orderStatus": order.OrderStatus,
	})
}
