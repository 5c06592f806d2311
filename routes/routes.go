package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-rakibul-islam/Chef-Origin-Server/handlers"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/middleware"
	"github.com/dev-rakibul-islam/Chef-Origin-Server/models"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Meals     *handlers.MealHandler
	Reviews   *handlers.ReviewHandler
	Favorites *handlers.FavoriteHandler
	Orders    *handlers.OrderHandler
	Payments  *handlers.PaymentHandler
	Requests  *handlers.RequestHandler
	Stats     *handlers.StatsHandler
}

func SetupRoutes(r *gin.Engine, h *Handlers, auth *middleware.Auth) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Browsing needs no auth
		public.GET("/meals", h.Meals.List)
		public.GET("/meals/:id", h.Meals.Get)
		public.GET("/meals/:id/reviews", h.Reviews.ListForMeal)
		public.GET("/reviews", h.Reviews.List)

		public.GET("/state-machine", handlers.StateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authd := r.Group("/api")
	authd.Use(auth.Required())
	{
		authd.GET("/profile", h.Auth.Profile)

		authd.GET("/users/:id", h.Users.Get)
		authd.PUT("/users/:id", h.Users.Update)

		authd.PUT("/meals/:id", h.Meals.Update)
		authd.DELETE("/meals/:id", h.Meals.Delete)

		authd.POST("/reviews", h.Reviews.Create)
		authd.PUT("/reviews/:id", h.Reviews.Update)
		authd.DELETE("/reviews/:id", h.Reviews.Delete)

		authd.GET("/favorites/:email", h.Favorites.ListForUser)
		authd.POST("/favorites", h.Favorites.Add)
		authd.DELETE("/favorites/:id", h.Favorites.Remove)

		authd.POST("/orders", h.Orders.Create)
		authd.GET("/orders/user/:email", h.Orders.ListForUser)
		authd.GET("/orders/chef/:chefId", h.Orders.ListForChef)
		authd.PUT("/orders/:id/status", h.Orders.UpdateStatus)

		authd.POST("/checkout-sessions", h.Payments.CreateCheckoutSession)
		authd.POST("/payments/confirm", h.Payments.Confirm)

		authd.POST("/requests", h.Requests.Submit)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api")
	chef.Use(auth.Required(), auth.RequireRole(models.RoleChef))
	{
		chef.POST("/meals", h.Meals.Create)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(auth.Required(), auth.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", h.Users.List)
		admin.GET("/orders", h.Orders.ListAll)
		admin.GET("/payments", h.Payments.List)
		admin.GET("/requests", h.Requests.List)
		admin.PUT("/requests/:id", h.Requests.Decide)
		admin.GET("/statistics", h.Stats.Statistics)
	}
}
