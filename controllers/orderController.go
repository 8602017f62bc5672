package controllers

import (
	"context"
	"net/http"
	"time"

	"go-laundry-management/models"
	"go-laundry-management/services"

	"github.com/gin-gonic/gin"
)

// SubmitOrderRequest is the payload for placing an order. Unit prices are
// not part of it; the server prices every line against the catalog.
type SubmitOrderRequest struct {
	Customer_name string                `json:"customer_name" validate:"required"`
	Address       string                `json:"address" validate:"required"`
	Phone         string                `json:"phone" validate:"required"`
	Items         []services.SubmitItem `json:"items" validate:"required,min=1"`
}

// MyOrdersResponse merges a customer's live and archived orders, the way
// the profile page shows them together.
type MyOrdersResponse struct {
	Orders  []models.Order         `json:"orders"`
	History []models.ArchivedOrder `json:"history"`
}

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// SubmitOrder creates a new order with status Waiting for the logged-in
// customer.
func (oc *OrderController) SubmitOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req SubmitOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderID, err := oc.orders.Submit(ctx, req.Customer_name, req.Address, req.Phone, c.GetString("uid"), req.Items)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

// GetMyOrders lists the logged-in customer's orders, live and archived.
func (oc *OrderController) GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		userID := c.GetString("uid")
		orders, err := oc.orders.ListByOwner(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		history, err := oc.orders.HistoryByOwner(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, MyOrdersResponse{Orders: orders, History: history})
	}
}
