package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/roles"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type RequestHandler struct {
	Workflow *roles.Workflow
	Requests *store.RequestStore
	Timeout  time.Duration
}

// List returns all role requests — admin only
func (h *RequestHandler) List(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	reqs, err := h.Requests.ListAll(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reqs), "requests": reqs})
}

type SubmitRequestRequest struct {
	UserName    string             `json:"userName" binding:"required"`
	UserEmail   string             `json:"userEmail" binding:"required,email"`
	RequestType models.RequestType `json:"requestType" binding:"required"`
}

// Submit files a role escalation request
func (h *RequestHandler) Submit(c *gin.Context) {
	var req SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	created, err := h.Workflow.Submit(ctx, req.UserName, req.UserEmail, req.RequestType)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": created})
}

type DecideRequestRequest struct {
	RequestStatus models.RequestStatus `json:"requestStatus" binding:"required"`
	NewRole       models.UserRole      `json:"newRole"`
}

// Decide approves or rejects a request — admin only
func (h *RequestHandler) Decide(c *gin.Context) {
	var req DecideRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	result, err := h.Workflow.Decide(ctx, c.Param("id"), req.RequestStatus, req.NewRole)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Request updated successfully",
		"request": result.Request,
		"role":    result.Role,
		"chefId":  result.ChefID,
	})
}
