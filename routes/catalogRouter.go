package routes

import (
	"go-laundry-management/controllers"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/catalog", controllers.GetCatalog())
}
