package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/apperr"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/middleware"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

type AuthHandler struct {
	Users   *store.UserStore
	Auth    *middleware.Auth
	Timeout time.Duration
}

type RegisterRequest struct {
	UID      string `json:"uid" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	PhotoURL string `json:"photoURL"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account. Every account starts with the default
// role; escalation goes through the role request workflow.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		Error(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		UID:          req.UID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhotoURL:     req.PhotoURL,
		Address:      req.Address,
		Role:         models.RoleUser,
	}
	if err := h.Users.Create(ctx, &user); err != nil {
		Error(c, err)
		return
	}

	token, err := h.Auth.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user":    user,
	})
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Profile returns the authenticated user's record
func (h *AuthHandler) Profile(c *gin.Context) {
	ctx, cancel := opCtx(c, h.Timeout)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, middleware.GetEmail(c))
	if err != nil {
		Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
