package controllers

import (
	"net/http"

	"go-laundry-management/services"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns both price tables. The catalog is static configuration
// so there is no store round trip.
func GetCatalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, services.Catalog())
	}
}
