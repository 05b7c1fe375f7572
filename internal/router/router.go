// Package router wires controllers and middleware onto a gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/franciscosanchezn/bistro-boss-api/docs" // Import generated docs
	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/cache"
	"github.com/franciscosanchezn/bistro-boss-api/internal/controllers"
	"github.com/franciscosanchezn/bistro-boss-api/internal/metrics"
	"github.com/franciscosanchezn/bistro-boss-api/internal/middleware"
	"github.com/franciscosanchezn/bistro-boss-api/internal/payments"
	"github.com/franciscosanchezn/bistro-boss-api/internal/services"
	"github.com/franciscosanchezn/bistro-boss-api/internal/store"
)

// ServiceName is reported by the health endpoint
const ServiceName = "bistro-boss-api"

// Dependencies are the shared clients the routes are built from
type Dependencies struct {
	Store     store.Store
	Cache     *cache.Client
	Tokens    *auth.TokenService
	Processor payments.Processor
	Currency  string
	Logger    *logrus.Logger
}

// Setup builds the engine with every route of the API
func Setup(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	if deps.Processor == nil {
		deps.Processor = payments.Unconfigured{}
	}

	userService := services.NewUserService(deps.Store)
	userController := controllers.NewUserController(userService)
	menuController := controllers.NewMenuController(services.NewMenuService(deps.Store, deps.Cache))
	reviewController := controllers.NewReviewController(services.NewReviewService(deps.Store, deps.Cache))
	cartController := controllers.NewCartController(services.NewCartService(deps.Store))
	paymentController := controllers.NewPaymentController(
		services.NewPaymentService(deps.Store, deps.Processor, deps.Currency, deps.Logger))
	statsController := controllers.NewStatsController(services.NewStatsService(deps.Store))
	authController := controllers.NewAuthController(deps.Tokens)

	authenticated := middleware.Authenticated(deps.Tokens)
	admin := middleware.IsAdmin(userService)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(deps.Logger),
		middleware.CORS(),
		metrics.Middleware(),
	)

	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler(deps.Store))
	router.GET("/metrics", metrics.Handler())

	router.POST("/jwt", authController.IssueToken)

	users := router.Group("/users")
	{
		users.GET("", authenticated, admin, userController.ListUsers)
		users.POST("", userController.Register)
		users.GET("/admin/:email", authenticated, userController.CheckAdmin)
		users.PATCH("/admin/:id", authenticated, admin, userController.PromoteToAdmin)
	}

	menu := router.Group("/menu")
	{
		menu.GET("", menuController.ListMenu)
		menu.POST("", authenticated, admin, menuController.CreateMenuItem)
		menu.DELETE("/:id", authenticated, admin, menuController.DeleteMenuItem)
	}

	router.GET("/reviews", reviewController.ListReviews)

	carts := router.Group("/carts")
	{
		carts.GET("", authenticated, cartController.ListCart)
		carts.POST("", cartController.AddToCart)
		carts.DELETE("/:id", cartController.RemoveFromCart)
	}

	router.POST("/create-payment-intent", authenticated, paymentController.CreateIntent)
	router.POST("/payments", authenticated, paymentController.Checkout)

	router.GET("/admin-stats", authenticated, admin, statsController.AdminStats)
	router.GET("/order-stars", authenticated, admin, statsController.OrderStats)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// rootHandler godoc
// @Summary Liveness text
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "boss is sitting")
}

// healthCheckHandler godoc
// @Summary Health check
// @Description Check if the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := s.Ping(c.Request.Context()); err != nil {
			middleware.Logger(c).WithError(err).Warn("Store ping failed")
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   ServiceName,
		})
	}
}
