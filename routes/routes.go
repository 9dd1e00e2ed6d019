package routes

import (
	"restaurant-pos/configs"
	"restaurant-pos/controllers"
	"restaurant-pos/entity"
	"restaurant-pos/middlewares"
	"restaurant-pos/repository"
	"restaurant-pos/services"
	"restaurant-pos/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto r.
// board may be nil, in which case no websocket endpoint is exposed.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, board *ws.OrderBoard) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	var notifier services.OrderNotifier
	if board != nil {
		notifier = board
	}

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	optionRepo := repository.NewMenuOptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	clock := services.NewBusinessClock(cfg.BusinessLocation)
	menuSvc := services.NewMenuService(menuRepo)
	optionSvc := services.NewMenuOptionService(optionRepo, menuRepo)
	orderSvc := services.NewOrderService(orderRepo, clock, notifier)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	menuCtrl := controllers.NewMenuController(menuSvc)
	optionCtrl := controllers.NewMenuOptionController(optionSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	guard := func(roles ...string) gin.HandlerFunc {
		if !cfg.AuthEnabled {
			return func(c *gin.Context) { c.Next() }
		}
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Menu (public reads)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id/options", optionCtrl.ListByMenu)

	// Menu (admin)
	m := r.Group("/menu", guard(entity.RoleAdmin))
	{
		m.POST("", menuCtrl.Create)
		m.PUT("/:id", menuCtrl.Update)
		m.DELETE("/:id", menuCtrl.Delete)
		m.POST("/:id/options", optionCtrl.Create)
		m.DELETE("/options/:option_id", optionCtrl.Delete)
	}

	// Orders (staff/admin)
	o := r.Group("/orders", guard(entity.RoleStaff, entity.RoleAdmin))
	{
		o.GET("", orderCtrl.List)
		o.GET("/date/:date", orderCtrl.ByDate)
		o.GET("/summary/:date", orderCtrl.Summary)
		o.POST("", orderCtrl.Create)
		o.PUT("/:id", orderCtrl.Update)
		o.PUT("/:id/status", orderCtrl.UpdateStatus)
		o.DELETE("/:id", orderCtrl.Delete)
	}

	if board != nil {
		r.GET("/ws/orders", guard(entity.RoleStaff, entity.RoleAdmin), board.HandleWebSocket)
	}
}
