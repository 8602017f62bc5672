package main

import (
	"log"
	"os"
	"time"

	"go-laundry-management/controllers"
	"go-laundry-management/database"
	"go-laundry-management/helpers"
	"go-laundry-management/middleware"
	"go-laundry-management/repositories"
	"go-laundry-management/routes"
	"go-laundry-management/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	adminUserID := os.Getenv("ADMIN_USER_ID")
	if adminUserID == "" {
		log.Println("ADMIN_USER_ID is not set, no account will resolve as administrator")
	}
	guard := helpers.NewAccessGuard(adminUserID)

	userRepo := repositories.NewMongoUserRepository(database.OpenCollection(database.Client, "users"))
	orderRepo := repositories.NewMongoOrderRepository(
		database.OpenCollection(database.Client, "orders"),
		database.OpenCollection(database.Client, "historyOrders"),
	)

	hub := controllers.NewHub()
	orderService := services.NewOrderService(orderRepo, hub)

	userController := controllers.NewUserController(userRepo, guard)
	orderController := controllers.NewOrderController(orderService)
	adminController := controllers.NewAdminController(orderService)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	routes.UserRoutes(router, userController)
	routes.CatalogRoutes(router)

	// Everything below requires a valid session token
	router.Use(middleware.Authentication())
	routes.OrderRoutes(router, orderController, userController, guard)
	routes.AdminRoutes(router, adminController, hub, guard)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
