package routes

import (
	"go-laundry-management/controllers"
	"go-laundry-management/helpers"
	"go-laundry-management/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine, ac *controllers.AdminController, hub *controllers.Hub, guard *helpers.AccessGuard) {
	admin := incomingRoutes.Group("/admin", middleware.RequireRole(guard, helpers.RoleAdministrator))
	admin.GET("/orders", ac.GetOrders())
	admin.PATCH("/orders/:order_id/process", ac.ProcessOrder())
	admin.PATCH("/orders/:order_id/complete", ac.CompleteOrder())
	admin.DELETE("/orders/:order_id", ac.ClearOrder())
	admin.GET("/history", ac.GetHistory())
	admin.GET("/ws", hub.HandleWebSocket())
}
