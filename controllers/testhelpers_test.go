package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"go-laundry-management/controllers"
	"go-laundry-management/helpers"
	"go-laundry-management/middleware"
	"go-laundry-management/models"
	"go-laundry-management/repositories"
	"go-laundry-management/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const adminUID = "admin-uid"

type fakeOrderRepo struct {
	orders     map[string]models.Order
	history    map[string]models.ArchivedOrder
	failDelete bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[string]models.Order),
		history: make(map[string]models.ArchivedOrder),
	}
}

func (f *fakeOrderRepo) Insert(_ context.Context, order models.Order) error {
	f.orders[order.Order_id] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, orderID string) (models.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return models.Order{}, repositories.ErrNoDocument
	}
	return order, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range f.orders {
		if o.User_id == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, from string, to string) (bool, error) {
	order, ok := f.orders[orderID]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	f.orders[orderID] = order
	return true, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID string) error {
	if f.failDelete {
		return errors.New("connection reset")
	}
	delete(f.orders, orderID)
	return nil
}

func (f *fakeOrderRepo) InsertHistory(_ context.Context, archived models.ArchivedOrder) error {
	f.history[archived.Order_id] = archived
	return nil
}

func (f *fakeOrderRepo) FindAllHistory(_ context.Context) ([]models.ArchivedOrder, error) {
	var orders []models.ArchivedOrder
	for _, o := range f.history {
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindHistoryByUser(_ context.Context, userID string) ([]models.ArchivedOrder, error) {
	var orders []models.ArchivedOrder
	for _, o := range f.history {
		if o.User_id == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

type fakeUserRepo struct {
	byEmail map[string]models.User
	byID    map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
}

func (f *fakeUserRepo) Insert(_ context.Context, user models.User) error {
	f.byEmail[*user.Email] = user
	f.byID[user.User_id] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return models.User{}, repositories.ErrNoDocument
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, userID string) (models.User, error) {
	user, ok := f.byID[userID]
	if !ok {
		return models.User{}, repositories.ErrNoDocument
	}
	return user, nil
}

func (f *fakeUserRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	if _, ok := f.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeUserRepo) UpdateTokens(_ context.Context, userID string, token string, refreshToken string) error {
	user, ok := f.byID[userID]
	if !ok {
		return nil
	}
	user.Token = &token
	user.Refresh_token = &refreshToken
	f.byID[userID] = user
	f.byEmail[*user.Email] = user
	return nil
}

// setupRouter wires the controllers behind the real authentication and role
// middleware, the way main.go does.
func setupRouter(t *testing.T, orderRepo repositories.OrderRepository, userRepo repositories.UserRepository) *gin.Engine {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	guard := helpers.NewAccessGuard(adminUID)
	orderService := services.NewOrderService(orderRepo, nil)
	oc := controllers.NewOrderController(orderService)
	ac := controllers.NewAdminController(orderService)
	uc := controllers.NewUserController(userRepo, guard)

	router := gin.New()
	router.POST("/users/signup", uc.SignUp())
	router.POST("/users/login", uc.Login())
	router.GET("/catalog", controllers.GetCatalog())

	router.Use(middleware.Authentication())
	customer := middleware.RequireRole(guard, helpers.RoleCustomer)
	router.POST("/orders", customer, oc.SubmitOrder())
	router.GET("/orders", customer, oc.GetMyOrders())
	router.GET("/users/me", customer, uc.GetMe())

	admin := router.Group("/admin", middleware.RequireRole(guard, helpers.RoleAdministrator))
	admin.GET("/orders", ac.GetOrders())
	admin.PATCH("/orders/:order_id/process", ac.ProcessOrder())
	admin.PATCH("/orders/:order_id/complete", ac.CompleteOrder())
	admin.DELETE("/orders/:order_id", ac.ClearOrder())
	admin.GET("/history", ac.GetHistory())

	return router
}

func tokenFor(t *testing.T, uid string) string {
	t.Helper()
	token, _, err := helpers.GenerateAllTokens("user@example.com", "Test User", uid)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedOrder(repo *fakeOrderRepo, orderID string, userID string, status string) {
	repo.orders[orderID] = models.Order{
		Order_id:      orderID,
		Customer_name: "Budi Santoso",
		Address:       "Jl. Melati 12",
		Phone:         "081234567890",
		User_id:       userID,
		Items: []models.LineItem{
			{Category: models.CategoryIntakeByWeight, Service: "Cuci + Setrika", Quantity: 3, Unit_price: 6000, Total: 18000},
		},
		Total_amount: 18000,
		Status:       status,
	}
}
