package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/akaXala/ESCOMIDA/configs"
	"github.com/akaXala/ESCOMIDA/controllers"
	"github.com/akaXala/ESCOMIDA/middlewares"
	"github.com/akaXala/ESCOMIDA/pkg/gemini"
	"github.com/akaXala/ESCOMIDA/pkg/logger"
	"github.com/akaXala/ESCOMIDA/pkg/whatsapp"
	"github.com/akaXala/ESCOMIDA/repository"
	"github.com/akaXala/ESCOMIDA/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// External clients
	waClient := whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneNumberID, "")
	geminiClient := gemini.NewClient(cfg.GeminiAPIKey, "")

	// Services
	notifySvc := services.NewNotificationService(waClient, logger.L())
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	userSvc := services.NewUserService(userRepo, cartRepo)
	foodSvc := services.NewFoodService(foodRepo)
	cartSvc := services.NewCartService(db, cartRepo, foodRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, notifySvc)
	reviewSvc := services.NewReviewService(reviewRepo)
	favSvc := services.NewFavoriteService(favRepo)
	assistSvc := services.NewAssistantService(geminiClient)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	foodCtrl := controllers.NewFoodController(foodSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, reviewSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	assistCtrl := controllers.NewAssistantController(assistSvc)
	notifyCtrl := controllers.NewNotificationController(notifySvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	api := r.Group("/api")

	// Catalog (public)
	api.GET("/alimentos", foodCtrl.List)
	api.POST("/alimentos/filtrar", foodCtrl.Filter)
	api.POST("/alimentos/mostrar", foodCtrl.Show)
	api.GET("/alimentos/calificacion", foodCtrl.Rating)
	api.POST("/alimentos/calificacion", foodCtrl.Ratings)
	api.GET("/alimentos/mejor-calificados", foodCtrl.TopRated)

	// Customer (any authenticated role)
	u := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/usuario", userCtrl.Me)
		u.POST("/numero", userCtrl.RegisterPhone)

		u.POST("/alimentos/anadir", cartCtrl.Add)
		u.GET("/carrito/items", cartCtrl.List)
		u.GET("/carrito/count", cartCtrl.Count)
		u.POST("/carrito/items/increment", cartCtrl.Increment)
		u.POST("/carrito/items/decrement", cartCtrl.Decrement)
		u.DELETE("/carrito/items/delete", cartCtrl.Remove)

		u.POST("/ordenes/crear", orderCtrl.Create)
		u.GET("/ordenes/mostrar-todos", orderCtrl.ListMine)
		u.POST("/ordenes/mostrar-detalles", orderCtrl.Details)
		u.DELETE("/ordenes/cancelar", orderCtrl.Cancel)
		u.POST("/ordenes/calificar", orderCtrl.Rate)

		u.POST("/favoritos/add", favCtrl.Add)
		u.POST("/favoritos/remove", favCtrl.Remove)
		u.POST("/favoritos/check", favCtrl.Check)
		u.GET("/favoritos", favCtrl.List)

		u.POST("/gemini/assist", assistCtrl.Assist)
	}

	// Kitchen boards and staff-driven transitions
	k := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "cocina", "admin"))
	{
		k.GET("/ordenes/mostrar-pedidos-items", orderCtrl.ListWithItems)
		k.GET("/ordenes/tablero", orderCtrl.Board)
		k.PUT("/ordenes/cocinando/:id", orderCtrl.Accept)
		k.PUT("/ordenes/listo/:id", orderCtrl.Ready)
		k.PUT("/ordenes/entregado/:id", orderCtrl.Deliver)
		k.PATCH("/ordenes/cambiar-estado", orderCtrl.ChangeStatus)
		k.POST("/whatsapp/send-message", notifyCtrl.Send)
	}
}
