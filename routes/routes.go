package routes

import (
	"github.com/Hsharma41126/new-restorant/configs"
	"github.com/Hsharma41126/new-restorant/controllers"
	"github.com/Hsharma41126/new-restorant/middlewares"
	"github.com/Hsharma41126/new-restorant/printing"
	"github.com/Hsharma41126/new-restorant/repository"
	"github.com/Hsharma41126/new-restorant/services"
	"github.com/Hsharma41126/new-restorant/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.KitchenHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Services
	policy := services.PolicyFromName(cfg.TransitionPolicy)
	client := printing.NewNetworkClient(cfg.PrintTimeout)
	printerSvc := services.NewPrinterService(printerRepo, ticketRepo, orderRepo, menuRepo, client, cfg.PrintTimeout)
	pricingSvc := services.NewPricingService(menuRepo, settingRepo)
	orderSvc := services.NewOrderService(db, orderRepo, ticketRepo, menuRepo, settingRepo, pricingSvc, printerSvc, policy)
	orderSvc.Events = hub
	ticketSvc := services.NewTicketService(ticketRepo, policy)
	ticketSvc.Events = hub

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc, printerSvc)
	ticketCtrl := controllers.NewTicketController(ticketSvc, printerSvc)
	printerCtrl := controllers.NewPrinterController(printerSvc)

	// Auth (public)
	r.POST("/auth/login", authCtrl.Login)

	api := r.Group("/", middlewares.AuthMiddleware(cfg))
	{
		// Orders
		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders", orderCtrl.List)
		api.GET("/orders/:id", orderCtrl.Detail)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		api.POST("/orders/:id/receipt", orderCtrl.PrintReceipt)

		// Kitchen tickets
		api.GET("/tickets", ticketCtrl.List)
		api.GET("/tickets/:id", ticketCtrl.Detail)
		api.PATCH("/tickets/:id/status", ticketCtrl.UpdateStatus)
		api.PATCH("/tickets/:id/items/:itemId/status", ticketCtrl.UpdateItemStatus)
		api.POST("/tickets/:id/print", ticketCtrl.Print)

		// Printers
		api.GET("/printers", printerCtrl.List)
		api.POST("/printers/:id/test", printerCtrl.Test)
	}

	// Kitchen display feed; browser clients pass the JWT as ?token= because
	// the WebSocket upgrade request cannot carry an Authorization header.
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg), hub.HandleWebSocket)
}
