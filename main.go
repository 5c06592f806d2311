package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/config"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/handlers"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/middleware"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/payments"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/roles"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/routes"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/store"
)

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	stores := store.New(db)
	log.Println("Database connected and migrated successfully")

	provider := payments.NewStripeProvider(cfg.StripeSecretKey)
	reconciler := payments.NewReconciler(stores, provider, cfg.Currency, cfg.SiteDomain)
	workflow := roles.NewWorkflow(stores)
	auth := middleware.NewAuth(cfg.JWTSecret, stores.Users, cfg.StoreTimeout)

	h := &routes.Handlers{
		Auth:      &handlers.AuthHandler{Users: stores.Users, Auth: auth, Timeout: cfg.StoreTimeout},
		Users:     &handlers.UserHandler{Users: stores.Users, Timeout: cfg.StoreTimeout},
		Meals:     &handlers.MealHandler{Meals: stores.Meals, Timeout: cfg.StoreTimeout},
		Reviews:   &handlers.ReviewHandler{Reviews: stores.Reviews, Meals: stores.Meals, Timeout: cfg.StoreTimeout},
		Favorites: &handlers.FavoriteHandler{Favorites: stores.Favorites, Timeout: cfg.StoreTimeout},
		Orders:    &handlers.OrderHandler{Orders: stores.Orders, Reconciler: reconciler, Timeout: cfg.StoreTimeout},
		Payments:  &handlers.PaymentHandler{Reconciler: reconciler, Payments: stores.Payments, Timeout: cfg.StoreTimeout},
		Requests:  &handlers.RequestHandler{Workflow: workflow, Requests: stores.Requests, Timeout: cfg.StoreTimeout},
		Stats:     &handlers.StatsHandler{Orders: stores.Orders, Users: stores.Users, Timeout: cfg.StoreTimeout},
	}

	// Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Chef Origin API",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Chef Origin API is running!"})
	})

	routes.SetupRoutes(r, h, auth)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Chef Origin server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server shutdown:", err)
	}
	if err := store.Close(db); err != nil {
		log.Println("Database close:", err)
	}
}
