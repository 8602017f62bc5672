package controllers

import (
	"errors"
	"log"
	"net/http"

	"go-laundry-management/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service failures to HTTP responses. Business failures
// keep their message; anything unrecognized is a backend failure and gets a
// generic message so store internals never leak to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIncompleteOrder),
		errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrIndexOutOfRange),
		errors.Is(err, services.ErrUnknownCategory),
		errors.Is(err, services.ErrServiceNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPartialArchival):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Println("backend failure:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
	}
}
