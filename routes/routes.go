package routes

import (
	"github.com/Dibyashritarout/ByteBites-main/configs"
	"github.com/Dibyashritarout/ByteBites-main/controllers"
	"github.com/Dibyashritarout/ByteBites-main/middlewares"
	"github.com/Dibyashritarout/ByteBites-main/repository"
	"github.com/Dibyashritarout/ByteBites-main/services"
	"github.com/Dibyashritarout/ByteBites-main/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, catalogRepo)

	// WS hub — broadcast ทุกครั้งที่ status เปลี่ยน
	hub := ws.NewOrderHub(orderSvc)
	orderSvc.OnStatusChange = hub.BroadcastStatus
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	api := r.Group("/api")

	// Public
	api.POST("/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Get)
	api.GET("/restaurants/:id/menu", restCtrl.Menu)
	api.GET("/menu-items", menuCtrl.List)
	api.GET("/menu-items/:id", menuCtrl.Get)
	api.GET("/categories", menuCtrl.Categories)

	// Protected
	auth := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/user", authCtrl.Me)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/add", cartCtrl.Add)
		auth.PUT("/cart/update", cartCtrl.Update)
		auth.DELETE("/cart/remove/:itemId", cartCtrl.Remove)
		auth.DELETE("/cart", cartCtrl.Clear)

		auth.POST("/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.List)
		auth.GET("/orders/:id", orderCtrl.Detail)
		auth.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// WS
	r.GET("/ws/orders/:id", middlewares.AuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
