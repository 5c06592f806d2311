package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type UserHandler struct {
	Users   *store.UserStore
	Timeout time.Duration
}

// List returns all users — admin only
func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// Get returns a user by external auth subject id
func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	user, err := h.Users.GetByUID(ctx, c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Address  string `json:"address"`
}

// Update applies profile fields to the user matched by uid. Role and chefId
// are deliberately not settable here; they change only through the role
// request workflow.
func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.PhotoURL != "" {
		fields["photo_url"] = req.PhotoURL
	}
	if req.Address != "" {
		fields["address"] = req.Address
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Users.UpdateProfile(ctx, c.Param("id"), fields); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}
