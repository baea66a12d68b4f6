package router

import (
	"github.com/gin-gonic/gin"
	"github.com/tastio/tastio-backend/config"
	"github.com/tastio/tastio-backend/internal/app/controller"
	"github.com/tastio/tastio-backend/internal/middleware"
)

type Router struct {
	authController       *controller.AuthController
	restaurantController *controller.RestaurantController
	menuController       *controller.MenuController
	reviewController     *controller.ReviewController
	favouriteController  *controller.FavouriteController
	postController       *controller.PostController
	categoryController   *controller.CategoryController
	adminController      *controller.AdminController
	uploadController     *controller.UploadController
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	restaurantController *controller.RestaurantController,
	menuController *controller.MenuController,
	reviewController *controller.ReviewController,
	favouriteController *controller.FavouriteController,
	postController *controller.PostController,
	categoryController *controller.CategoryController,
	adminController *controller.AdminController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:       authController,
		restaurantController: restaurantController,
		menuController:       menuController,
		reviewController:     reviewController,
		favouriteController:  favouriteController,
		postController:       postController,
		categoryController:   categoryController,
		adminController:      adminController,
		uploadController:     uploadController,
		authMiddleware:       authMiddleware,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Tastio API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
		}

		v1.GET("/users/:email/role", r.authController.GetRole)

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", r.restaurantController.List)
			restaurants.GET("/:id", r.restaurantController.Get)
			restaurants.POST("/apply",
				r.authMiddleware.Authenticate(),
				r.restaurantController.Apply,
			)
			restaurants.PATCH("/verify/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.restaurantController.Verify,
			)
			restaurants.PATCH("/reject/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.restaurantController.Reject,
			)
		}

		v1.GET("/all-foods", r.menuController.Search)
		menu := v1.Group("/menu")
		{
			menu.GET("/:id", r.menuController.Get)
			menu.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("seller", "admin"),
				r.menuController.Create,
			)
			menu.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("seller", "admin"),
				r.menuController.Update,
			)
			menu.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("seller", "admin"),
				r.menuController.Delete,
			)
		}

		v1.GET("/latest-reviews", r.reviewController.Latest)
		v1.GET("/all-reviews", r.reviewController.Search)
		v1.GET("/leaderboard", r.reviewController.Leaderboard)
		v1.GET("/my-reviews", r.authMiddleware.Authenticate(), r.reviewController.Mine)
		reviews := v1.Group("/reviews")
		{
			reviews.GET("/:id", r.reviewController.Get)
			reviews.POST("", r.authMiddleware.Authenticate(), r.reviewController.Create)
			reviews.PATCH("/:id", r.authMiddleware.Authenticate(), r.reviewController.Update)
			reviews.DELETE("/:id", r.authMiddleware.Authenticate(), r.reviewController.Delete)
		}

		favourites := v1.Group("/favourites")
		favourites.Use(r.authMiddleware.Authenticate())
		{
			favourites.GET("", r.favouriteController.List)
			favourites.POST("", r.favouriteController.Add)
			favourites.DELETE("/:reviewId", r.favouriteController.Remove)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", r.authMiddleware.OptionalAuthenticate(), r.postController.List)
			posts.POST("", r.authMiddleware.Authenticate(), r.postController.Create)
			posts.PATCH("/like/:id", r.authMiddleware.Authenticate(), r.postController.ToggleLike)
			posts.PATCH("/:id", r.authMiddleware.Authenticate(), r.postController.Update)
			posts.DELETE("/:id", r.authMiddleware.Authenticate(), r.postController.Delete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.List)
			categories.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Create,
			)
			categories.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Update,
			)
			categories.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.Delete,
			)
		}

		seller := v1.Group("/seller")
		seller.Use(r.authMiddleware.Authenticate())
		seller.Use(r.authMiddleware.RequireRole("seller", "admin"))
		{
			seller.GET("/restaurant", r.restaurantController.GetMine)
			seller.GET("/menu", r.menuController.ListMine)
		}

		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate())
		admin.Use(r.authMiddleware.RequireRole("admin"))
		{
			admin.GET("/stats", r.adminController.Stats)
			admin.GET("/stats/export", r.adminController.ExportStats)
			admin.GET("/users", r.adminController.ListUsers)
			admin.PATCH("/users/role/:id", r.adminController.UpdateUserRole)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presign", r.uploadController.Presign)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
