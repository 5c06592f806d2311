package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type MealHandler struct {
	Meals   *store.MealStore
	Timeout time.Duration
}

// List returns meals, optionally capped by ?limit=
func (h *MealHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	meals, err := h.Meals.List(ctx, limit)
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(meals), "meals": meals})
}

func (h *MealHandler) Get(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	meal, err := h.Meals.GetByID(ctx, c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

type CreateMealRequest struct {
	FoodName              string   `json:"foodName" binding:"required"`
	ChefName              string   `json:"chefName"`
	FoodImage             string   `json:"foodImage"`
	Price                 float64  `json:"price" binding:"required,gt=0"`
	Rating                float64  `json:"rating"`
	Ingredients           []string `json:"ingredients"`
	EstimatedDeliveryTime string   `json:"estimatedDeliveryTime"`
	ChefExperience        string   `json:"chefExperience"`
	ChefID                string   `json:"chefId"`
	UserEmail             string   `json:"userEmail"`
	DeliveryArea          string   `json:"deliveryArea"`
}

// Create adds a meal — chef only
func (h *MealHandler) Create(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := models.Meal{
		FoodName:              req.FoodName,
		ChefName:              req.ChefName,
		FoodImage:             req.FoodImage,
		Price:                 req.Price,
		Rating:                req.Rating,
		Ingredients:           req.Ingredients,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		ChefExperience:        req.ChefExperience,
		ChefID:                req.ChefID,
		UserEmail:             req.UserEmail,
		DeliveryArea:          req.DeliveryArea,
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Meals.Create(ctx, &meal); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

type UpdateMealRequest struct {
	FoodName              string   `json:"foodName"`
	ChefName              string   `json:"chefName"`
	FoodImage             string   `json:"foodImage"`
	Price                 float64  `json:"price"`
	Rating                float64  `json:"rating"`
	Ingredients           []string `json:"ingredients"`
	EstimatedDeliveryTime string   `json:"estimatedDeliveryTime"`
	ChefExperience        string   `json:"chefExperience"`
	DeliveryArea          string   `json:"deliveryArea"`
}

func (h *MealHandler) Update(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	if req.FoodName != "" {
		fields["food_name"] = req.FoodName
	}
	if req.ChefName != "" {
		fields["chef_name"] = req.ChefName
	}
	if req.FoodImage != "" {
		fields["food_image"] = req.FoodImage
	}
	if req.Price > 0 {
		fields["price"] = req.Price
	}
	if req.Rating > 0 {
		fields["rating"] = req.Rating
	}
	if req.EstimatedDeliveryTime != "" {
		fields["estimated_delivery_time"] = req.EstimatedDeliveryTime
	}
	if req.ChefExperience != "" {
		fields["chef_experience"] = req.ChefExperience
	}
	if req.DeliveryArea != "" {
		fields["delivery_area"] = req.DeliveryArea
	}
	if len(req.Ingredients) > 0 {
		fields["ingredients"] = req.Ingredients
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Meals.Update(ctx, c.Param("id"), fields); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal updated successfully"})
}

func (h *MealHandler) Delete(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Meals.Delete(ctx, c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
