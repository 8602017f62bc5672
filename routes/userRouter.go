package routes

import (
	"go-laundry-management/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, uc *controllers.UserController) {
	incomingRoutes.POST("/users/signup", uc.SignUp())
	incomingRoutes.POST("/users/login", uc.Login())
}
