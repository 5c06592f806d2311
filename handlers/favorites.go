package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/middleware"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type FavoriteHandler struct {
	Favorites *store.FavoriteStore
	Timeout   time.Duration
}

// ListForUser returns the caller's favorites; the path email must match the
// authenticated principal.
func (h *FavoriteHandler) ListForUser(c *gin.Context) {
	email := c.Param("email")
	if middleware.GetEmail(c) != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	favs, err := h.Favorites.ListForUser(ctx, email)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(favs), "favorites": favs})
}

type AddFavoriteRequest struct {
	UserEmail string  `json:"userEmail" binding:"required,email"`
	MealID    string  `json:"mealId" binding:"required"`
	MealName  string  `json:"mealName"`
	ChefID    string  `json:"chefId"`
	ChefName  string  `json:"chefName"`
	Price     float64 `json:"price"`
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav := models.Favorite{
		UserEmail: req.UserEmail,
		MealID:    req.MealID,
		MealName:  req.MealName,
		ChefID:    req.ChefID,
		ChefName:  req.ChefName,
		Price:     req.Price,
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Favorites.Add(ctx, &fav); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorite": fav})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Favorites.Remove(ctx, c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}
