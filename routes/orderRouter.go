package routes

import (
	"go-laundry-management/controllers"
	"go-laundry-management/helpers"
	"go-laundry-management/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, oc *controllers.OrderController, uc *controllers.UserController, guard *helpers.AccessGuard) {
	customer := middleware.RequireRole(guard, helpers.RoleCustomer)
	incomingRoutes.POST("/orders", customer, oc.SubmitOrder())
	incomingRoutes.GET("/orders", customer, oc.GetMyOrders())
	incomingRoutes.GET("/users/me", customer, uc.GetMe())
}
