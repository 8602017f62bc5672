package controllers

import (
	"context"
	"net/http"
	"time"

	"go-laundry-management/services"

	"github.com/gin-gonic/gin"
)

// AdminController drives the order lifecycle. Every handler here sits
// behind the administrator role check; the service still enforces the
// status preconditions itself.
type AdminController struct {
	orders *services.OrderService
}

func NewAdminController(orders *services.OrderService) *AdminController {
	return &AdminController{orders: orders}
}

// GetOrders lists every live order.
func (ac *AdminController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orders, err := ac.orders.ListAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// ProcessOrder moves a Waiting order into Processing.
func (ac *AdminController) ProcessOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := ac.orders.Process(ctx, c.Param("order_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order is being processed"})
	}
}

// CompleteOrder moves a Processing order into Completed.
func (ac *AdminController) CompleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := ac.orders.Complete(ctx, c.Param("order_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order completed"})
	}
}

// ClearOrder archives a Completed order into historyOrders and removes the
// live record.
func (ac *AdminController) ClearOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if err := ac.orders.Clear(ctx, c.Param("order_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order archived"})
	}
}

// GetHistory lists every archived order.
func (ac *AdminController) GetHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		history, err := ac.orders.History(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
	}
}
