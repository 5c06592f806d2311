package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type ReviewHandler struct {
	Reviews *store.ReviewStore
	Meals   *store.MealStore
	Timeout time.Duration
}

// List returns reviews, optionally filtered by ?email= and capped by ?limit=,
// each decorated with the reviewed meal's name and image.
func (h *ReviewHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	reviews, err := h.Reviews.List(ctx, c.Query("email"), limit)
	if err != nil {
		Error(c, err)
		return
	}

	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.FoodID)
	}
	meals, err := h.Meals.GetByIDs(ctx, ids)
	if err != nil {
		Error(c, err)
		return
	}
	for i := range reviews {
		if meal, ok := meals[reviews[i].FoodID]; ok {
			reviews[i].MealName = meal.FoodName
			reviews[i].MealImage = meal.FoodImage
		}
	}

	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// ListForMeal returns all reviews of one meal
func (h *ReviewHandler) ListForMeal(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	reviews, err := h.Reviews.ListForMeal(ctx, c.Param("id"))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

type CreateReviewRequest struct {
	FoodID        string `json:"foodId" binding:"required"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail" binding:"required,email"`
	ReviewerImage string `json:"reviewerImage"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		FoodID:        req.FoodID,
		ReviewerName:  req.ReviewerName,
		ReviewerEmail: req.ReviewerEmail,
		ReviewerImage: req.ReviewerImage,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Reviews.Create(ctx, &review); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]any{}
	if req.Rating > 0 {
		fields["rating"] = req.Rating
	}
	if req.Comment != "" {
		fields["comment"] = req.Comment
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Reviews.Update(ctx, c.Param("id"), fields); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if err := h.Reviews.Delete(ctx, c.Param("id")); err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
